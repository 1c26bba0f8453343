package notifications

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"euramax/config"
	"euramax/detector"
	"euramax/models"
	"euramax/utils"
)

// Channel names as stored in delivery records
const (
	ChannelPush    = "push"
	ChannelEmail   = "email"
	ChannelSMS     = "sms"
	ChannelDesktop = "desktop"
)

// DeliveryResult reports what was sent to one user
type DeliveryResult struct {
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	Channels  []string  `json:"channels"`
	Timestamp time.Time `json:"timestamp"`
}

// Summary is the outcome of one fan-out
type Summary struct {
	NotificationID string                    `json:"notification_id"`
	UsersNotified  int                       `json:"users_notified"`
	Results        map[string]DeliveryResult `json:"results"`
}

// Service fans threat notifications out to users over their preferred
// channels and keeps the delivery history.
type Service struct {
	db             *gorm.DB
	client         *resty.Client
	demo           bool
	pushWebhookURL string
	smsApiURL      string
	smsApiKey      string
	now            func() time.Time
}

// NewService builds the fan-out service. The channel endpoints are taken
// from cfg once; a nil cfg means log-only demo delivery.
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	s := &Service{
		db: db,
		client: resty.New().
			SetTimeout(10 * time.Second).
			SetRetryCount(2),
		demo: true,
		now:  time.Now,
	}
	if cfg != nil {
		s.demo = cfg.NotificationsDemo
		s.pushWebhookURL = cfg.PushWebhookUrl
		s.smsApiURL = cfg.SmsApiUrl
		s.smsApiKey = cfg.SmsApiKey
	}
	return s
}

// SendThreatNotification notifies the target users about a detection. A nil
// target list means everyone with a preference record. SMS only goes out for
// critical detections.
func (s *Service) SendThreatNotification(result *detector.Result, targetUserIDs []string) (*Summary, error) {
	var prefs []models.NotificationPreference
	query := s.db
	if len(targetUserIDs) > 0 {
		query = query.Where("user_id IN ?", targetUserIDs)
	}
	if err := query.Find(&prefs).Error; err != nil {
		return nil, err
	}

	template := SelectTemplate(result.ThreatType, result.Severity)
	summary := &Summary{
		NotificationID: uuid.NewString(),
		Results:        make(map[string]DeliveryResult, len(prefs)),
	}

	for _, pref := range prefs {
		user := s.lookupUser(pref)
		personal := Personalize(template, user, result)

		var channels []string
		if pref.PushEnabled && pref.PushToken != "" {
			s.sendPush(pref, personal)
			channels = append(channels, ChannelPush)
		}
		if pref.EmailEnabled && pref.Email != "" {
			s.sendEmail(pref, user, personal, result)
			channels = append(channels, ChannelEmail)
		}
		if pref.DesktopEnabled {
			log.Printf("[NOTIFY] Desktop melding user=%s title=%q", pref.UserID, personal.Title)
			channels = append(channels, ChannelDesktop)
		}
		if result.Severity == detector.SeverityCritical && pref.SmsEnabled && pref.Phone != "" {
			s.sendSMS(pref, personal)
			channels = append(channels, ChannelSMS)
		}

		summary.Results[pref.UserID] = DeliveryResult{
			UserID:    pref.UserID,
			Status:    "sent",
			Channels:  channels,
			Timestamp: s.now(),
		}
		s.record(summary.NotificationID, pref.UserID, result, personal, channels)
	}

	summary.UsersNotified = len(summary.Results)
	log.Printf("[NOTIFY] Bedreiging notificatie verzonden type=%s severity=%s users=%d",
		result.ThreatType, result.Severity, summary.UsersNotified)
	return summary, nil
}

func (s *Service) lookupUser(pref models.NotificationPreference) *models.User {
	var user models.User
	err := s.db.Where("email = ? AND is_deleted = ?", pref.Email, false).First(&user).Error
	if err != nil {
		return &models.User{Name: pref.UserID, Role: "EMPLOYEE"}
	}
	return &user
}

func (s *Service) sendPush(pref models.NotificationPreference, t Template) {
	if s.demo || s.pushWebhookURL == "" {
		log.Printf("[NOTIFY] (demo) Push user=%s title=%q", pref.UserID, t.Title)
		return
	}
	_, err := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"token":   pref.PushToken,
			"title":   t.Title,
			"body":    t.Message,
			"urgency": t.UrgencyLevel,
			"actions": t.ActionButtons,
		}).
		Post(s.pushWebhookURL)
	if err != nil {
		log.Printf("[NOTIFY] Push mislukt user=%s: %v", pref.UserID, err)
	}
}

func (s *Service) sendEmail(pref models.NotificationPreference, user *models.User, t Template, result *detector.Result) {
	if s.demo {
		log.Printf("[NOTIFY] (demo) Email user=%s title=%q", pref.UserID, t.Title)
		return
	}
	body := EmailBody(user.Name, t, result)
	if err := utils.SendThreatAlertEmail(pref.Email, user.Name, t.Title, body); err != nil {
		log.Printf("[NOTIFY] Email mislukt user=%s: %v", pref.UserID, err)
	}
}

func (s *Service) sendSMS(pref models.NotificationPreference, t Template) {
	if s.demo || s.smsApiURL == "" {
		log.Printf("[NOTIFY] (demo) SMS user=%s phone=%s***", pref.UserID, maskPhone(pref.Phone))
		return
	}
	_, err := s.client.R().
		SetHeader("Authorization", "Bearer "+s.smsApiKey).
		SetBody(map[string]string{
			"to":      pref.Phone,
			"message": SMSBody(t),
		}).
		Post(s.smsApiURL)
	if err != nil {
		log.Printf("[NOTIFY] SMS mislukt user=%s: %v", pref.UserID, err)
	}
}

func maskPhone(phone string) string {
	if len(phone) <= 6 {
		return phone
	}
	return phone[:6]
}

func (s *Service) record(notificationID, userID string, result *detector.Result, t Template, channels []string) {
	raw, _ := json.Marshal(channels)
	rec := models.NotificationRecord{
		NotificationID: notificationID + ":" + userID,
		UserID:         userID,
		ThreatType:     string(result.ThreatType),
		Severity:       string(result.Severity),
		Title:          t.Title,
		Channels:       string(raw),
		Status:         "SENT",
	}
	if err := s.db.Create(&rec).Error; err != nil {
		log.Printf("[NOTIFY] Historie opslaan mislukt: %v", err)
	}
}

// History returns the most recent delivery records, newest first
func (s *Service) History(limit int) ([]models.NotificationRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var records []models.NotificationRecord
	err := s.db.Order("created_at DESC").Limit(limit).Find(&records).Error
	return records, err
}

// Preferences returns the stored preferences for a user
func (s *Service) Preferences(userID string) (*models.NotificationPreference, error) {
	var pref models.NotificationPreference
	if err := s.db.Where("user_id = ?", userID).First(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

// UpdatePreferences upserts channel opt-ins for a user
func (s *Service) UpdatePreferences(pref *models.NotificationPreference) error {
	var existing models.NotificationPreference
	err := s.db.Where("user_id = ?", pref.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(pref).Error
	}
	if err != nil {
		return err
	}
	pref.ID = existing.ID
	return s.db.Model(&existing).Updates(map[string]interface{}{
		"email":           pref.Email,
		"phone":           pref.Phone,
		"push_token":      pref.PushToken,
		"push_enabled":    pref.PushEnabled,
		"email_enabled":   pref.EmailEnabled,
		"sms_enabled":     pref.SmsEnabled,
		"desktop_enabled": pref.DesktopEnabled,
	}).Error
}

// HealthCheck reports service status the monitoring endpoint can expose
func (s *Service) HealthCheck() string {
	if s.db == nil {
		return "niet_geinitialiseerd"
	}
	return "operationeel"
}
