package models

import (
	"time"

	"gorm.io/gorm"
)

// ThreatEvent is a persisted detection result. Every analysis that crosses
// the detection threshold is recorded here and feeds the dashboard views.
type ThreatEvent struct {
	gorm.Model
	AnalysisID  string    `json:"analysis_id" gorm:"uniqueIndex;not null"`
	ThreatType  string    `json:"threat_type" gorm:"index"` // phishing, malware, ddos, ...
	Severity    string    `json:"severity" gorm:"index"`    // critical, high, medium, low, info
	Confidence  float64   `json:"confidence"`
	Source      string    `json:"source"` // e.g. "email:sender@domain", "file:invoice.exe"
	Description string    `json:"description"`
	Indicators  string    `json:"indicators"` // JSON array of indicator strings
	DetectedAt  time.Time `json:"detected_at" gorm:"index"`
	Resolved    bool      `json:"resolved" gorm:"default:false"`
}
