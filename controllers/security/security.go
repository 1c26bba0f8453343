package securityController

import (
	"encoding/json"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"euramax/config"
	"euramax/database"
	"euramax/detector"
	"euramax/middleware"
	"euramax/models"
	"euramax/notifications"
	"euramax/utils"
	securityValidator "euramax/validators/security"
)

// Controller exposes the threat analysis endpoints
type Controller struct {
	engine   *detector.Engine
	notifier *notifications.Service
}

func New(engine *detector.Engine, notifier *notifications.Service) *Controller {
	return &Controller{engine: engine, notifier: notifier}
}

// ProcessDetection stores the event and fans out notifications for
// detections above the threshold. The background feed scan reuses it.
func (ctl *Controller) ProcessDetection(result *detector.Result) {
	indicators, _ := json.Marshal(result.Indicators)
	event := models.ThreatEvent{
		AnalysisID:  result.AnalysisID,
		ThreatType:  string(result.ThreatType),
		Severity:    string(result.Severity),
		Confidence:  result.Confidence,
		Source:      sourceOf(result),
		Description: result.DutchDescription,
		Indicators:  string(indicators),
		DetectedAt:  result.Timestamp,
	}
	if err := database.Database.Db.Create(&event).Error; err != nil {
		log.Printf("[SECURITY] Error saving threat event: %v", err)
	}

	if ctl.engine.Detected(result) {
		go func() {
			if _, err := ctl.notifier.SendThreatNotification(result, nil); err != nil {
				log.Printf("[SECURITY] Notification fan-out failed: %v", err)
			}
		}()
	}
}

func sourceOf(result *detector.Result) string {
	if sender, ok := result.SourceData["sender"].(string); ok {
		return "email:" + sender
	}
	if filename, ok := result.SourceData["filename"].(string); ok {
		return "file:" + filename
	}
	if ip, ok := result.SourceData["source_ip"].(string); ok {
		return "network:" + ip
	}
	return "unknown"
}

// AnalyzeEmail scores a submitted email for phishing
func (ctl *Controller) AnalyzeEmail(c *fiber.Ctx) error {
	req, ok := c.Locals("validatedEmail").(*securityValidator.AnalyzeEmailRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	result := ctl.engine.AnalyzeEmail(req.Content, req.Sender, req.Subject)
	ctl.ProcessDetection(result)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email analysis completed.", result)
}

// AnalyzeFile scores an uploaded file for malware. Flagged files go to the
// quarantine directory.
func (ctl *Controller) AnalyzeFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A file upload is required!", nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
	}

	result := ctl.engine.AnalyzeFile(content, fileHeader.Filename)
	ctl.ProcessDetection(result)

	if ctl.engine.Detected(result) {
		path, qerr := utils.SaveQuarantineFile(content, fileHeader.Filename, config.AppConfig.QuarantineDir)
		if qerr != nil {
			log.Printf("[SECURITY] Quarantine failed for %s: %v", fileHeader.Filename, qerr)
		} else {
			log.Printf("[SECURITY] File quarantined: %s", path)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File analysis completed.", result)
}

// AnalyzeNetwork scores a network flow sample
func (ctl *Controller) AnalyzeNetwork(c *fiber.Ctx) error {
	req, ok := c.Locals("validatedNetwork").(*securityValidator.AnalyzeNetworkRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	result := ctl.engine.AnalyzeNetwork(req.SourceIP, req.DestinationIP, []byte(req.Payload))
	if req.Protocol != "" {
		result.SourceData["protocol"] = req.Protocol
	}
	ctl.ProcessDetection(result)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Network analysis completed.", result)
}

// Statistics combines engine counters with stored event counts
func (ctl *Controller) Statistics(c *fiber.Ctx) error {
	stats := ctl.engine.Statistics()

	db := database.Database.Db
	var totalEvents, unresolved int64
	db.Model(&models.ThreatEvent{}).Count(&totalEvents)
	db.Model(&models.ThreatEvent{}).Where("resolved = false").Count(&unresolved)

	var bySeverity []struct {
		Severity string `json:"severity"`
		Count    int64  `json:"count"`
	}
	db.Model(&models.ThreatEvent{}).
		Select("severity, count(*) as count").
		Group("severity").
		Scan(&bySeverity)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully.", fiber.Map{
		"total_scans":         stats.TotalScans,
		"threats_detected":    stats.ThreatsDetected,
		"last_scan":           stats.LastScan,
		"detection_threshold": ctl.engine.Threshold(),
		"stored_events":       totalEvents,
		"unresolved_events":   unresolved,
		"events_by_severity":  bySeverity,
	})
}
