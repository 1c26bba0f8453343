package utils

import (
	"os"
	"path/filepath"
	"time"
)

// SaveQuarantineFile writes a flagged upload into the quarantine directory
// under a unique timestamped name and strips execute permissions.
func SaveQuarantineFile(content []byte, originalName, destDir string) (string, error) {
	if destDir == "" {
		destDir = "quarantine"
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(originalName)
	newFilename := time.Now().Format("20060102150405") + ext + ".quarantined"
	filePath := filepath.Join(destDir, newFilename)

	if err := os.WriteFile(filePath, content, 0600); err != nil {
		return "", err
	}

	return filePath, nil
}
