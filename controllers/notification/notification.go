package notificationController

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"euramax/config"
	"euramax/detector"
	"euramax/middleware"
	"euramax/models"
	"euramax/notifications"
	notificationValidator "euramax/validators/notification"
)

// Controller exposes notification history, preferences and test endpoints
type Controller struct {
	svc *notifications.Service
}

func New(svc *notifications.Service) *Controller {
	return &Controller{svc: svc}
}

// History returns recent deliveries, newest first
func (ctl *Controller) History(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	records, err := ctl.svc.History(limit)
	if err != nil {
		log.Printf("[NOTIFY] Error fetching history: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "History fetched successfully.", records)
}

// GetPreferences returns channel opt-ins for a user
func (ctl *Controller) GetPreferences(c *fiber.Ctx) error {
	pref, err := ctl.svc.Preferences(c.Params("userId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Preferences not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch preferences!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Preferences fetched successfully.", pref)
}

// UpdatePreferences upserts channel opt-ins for a user
func (ctl *Controller) UpdatePreferences(c *fiber.Ctx) error {
	req, ok := c.Locals("validatedPreferences").(*notificationValidator.PreferencesRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	userID := c.Params("userId")
	pref := &models.NotificationPreference{UserID: userID}
	if existing, err := ctl.svc.Preferences(userID); err == nil {
		pref = existing
	}

	if req.Email != "" {
		pref.Email = req.Email
	}
	if req.Phone != "" {
		pref.Phone = req.Phone
	}
	if req.PushToken != "" {
		pref.PushToken = req.PushToken
	}
	if req.PushEnabled != nil {
		pref.PushEnabled = *req.PushEnabled
	}
	if req.EmailEnabled != nil {
		pref.EmailEnabled = *req.EmailEnabled
	}
	if req.SmsEnabled != nil {
		pref.SmsEnabled = *req.SmsEnabled
	}
	if req.DesktopEnabled != nil {
		pref.DesktopEnabled = *req.DesktopEnabled
	}

	if err := ctl.svc.UpdatePreferences(pref); err != nil {
		log.Printf("[NOTIFY] Error updating preferences: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update preferences!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Preferences updated successfully.", pref)
}

// ChannelStatus reports which delivery channels are configured
func (ctl *Controller) ChannelStatus(c *fiber.Ctx) error {
	demo := config.AppConfig.NotificationsDemo
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Channel status fetched successfully.", fiber.Map{
		"demo_mode": demo,
		"channels": fiber.Map{
			notifications.ChannelPush:    !demo && config.AppConfig.PushWebhookUrl != "",
			notifications.ChannelEmail:   !demo && config.AppConfig.SendgridApiKey != "",
			notifications.ChannelSMS:     !demo && config.AppConfig.SmsApiUrl != "",
			notifications.ChannelDesktop: true,
		},
		"service": ctl.svc.HealthCheck(),
	})
}

// SendTest fans out a synthetic notification so operators can verify wiring
func (ctl *Controller) SendTest(c *fiber.Ctx) error {
	reqData := new(struct {
		ThreatType string   `json:"threat_type"`
		Severity   string   `json:"severity"`
		UserIDs    []string `json:"user_ids"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.ThreatType == "" {
		reqData.ThreatType = string(detector.ThreatPhishing)
	}
	if reqData.Severity == "" {
		reqData.Severity = string(detector.SeverityMedium)
	}

	result := &detector.Result{
		AnalysisID:       "test_" + time.Now().Format("20060102150405"),
		ThreatType:       detector.ThreatType(reqData.ThreatType),
		Severity:         detector.Severity(reqData.Severity),
		Confidence:       1.0,
		DutchDescription: "Testmelding van het notificatiesysteem.",
		Timestamp:        time.Now(),
		SourceData:       map[string]interface{}{"sender": "test@euramax.eu"},
	}

	summary, err := ctl.svc.SendThreatNotification(result, reqData.UserIDs)
	if err != nil {
		log.Printf("[NOTIFY] Test notification failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send test notification!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test notification sent.", summary)
}

// Templates returns the template that would be used for a given threat
func (ctl *Controller) Templates(c *fiber.Ctx) error {
	threatType := detector.ThreatType(c.Query("threat_type", string(detector.ThreatPhishing)))
	severity := detector.Severity(c.Query("severity", string(detector.SeverityCritical)))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Template fetched successfully.", fiber.Map{
		"threat_type": threatType,
		"severity":    severity,
		"template":    notifications.SelectTemplate(threatType, severity),
	})
}
