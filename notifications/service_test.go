package notifications

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"euramax/config"
	"euramax/detector"
	"euramax/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.NotificationRecord{},
		&models.NotificationPreference{},
	))

	svc := NewService(db, nil)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

func seedUser(t *testing.T, svc *Service, userID, email, role string, smsEnabled bool) {
	t.Helper()
	require.NoError(t, svc.db.Create(&models.User{
		Name:  "Test " + userID,
		Email: email,
		Role:  role,
	}).Error)
	require.NoError(t, svc.db.Create(&models.NotificationPreference{
		UserID:         userID,
		Email:          email,
		Phone:          "+31612345678",
		PushToken:      userID + "_token",
		PushEnabled:    true,
		EmailEnabled:   true,
		SmsEnabled:     smsEnabled,
		DesktopEnabled: true,
	}).Error)
}

func criticalPhishing() *detector.Result {
	return &detector.Result{
		AnalysisID: "email_test",
		ThreatType: detector.ThreatPhishing,
		Severity:   detector.SeverityCritical,
		Confidence: 0.95,
		Timestamp:  time.Date(2024, 3, 15, 9, 58, 0, 0, time.UTC),
		SourceData: map[string]interface{}{"sender": "aanvaller@evil.example"},
	}
}

func TestNewServiceConfigSnapshot(t *testing.T) {
	// nil config must fall back to log-only delivery, never panic
	svc := NewService(nil, nil)
	assert.True(t, svc.demo)

	svc = NewService(nil, &config.Config{
		NotificationsDemo: false,
		PushWebhookUrl:    "https://push.example/send",
		SmsApiUrl:         "https://sms.example/send",
		SmsApiKey:         "geheim",
	})
	assert.False(t, svc.demo)
	assert.Equal(t, "https://push.example/send", svc.pushWebhookURL)
	assert.Equal(t, "https://sms.example/send", svc.smsApiURL)
	assert.Equal(t, "geheim", svc.smsApiKey)
}

func TestSendThreatNotificationFanOut(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc, "admin", "admin@euramax.eu", "ADMIN", true)
	seedUser(t, svc, "user1", "gebruiker@euramax.eu", "EMPLOYEE", false)

	summary, err := svc.SendThreatNotification(criticalPhishing(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.UsersNotified)
	assert.NotEmpty(t, summary.NotificationID)

	adminResult := summary.Results["admin"]
	assert.ElementsMatch(t, []string{ChannelPush, ChannelEmail, ChannelDesktop, ChannelSMS}, adminResult.Channels)

	// sms disabled for user1
	userResult := summary.Results["user1"]
	assert.NotContains(t, userResult.Channels, ChannelSMS)
}

func TestSendThreatNotificationTargeted(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc, "admin", "admin@euramax.eu", "ADMIN", true)
	seedUser(t, svc, "user1", "gebruiker@euramax.eu", "EMPLOYEE", false)

	summary, err := svc.SendThreatNotification(criticalPhishing(), []string{"user1"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.UsersNotified)
	assert.Contains(t, summary.Results, "user1")
	assert.NotContains(t, summary.Results, "admin")
}

func TestSMSOnlyForCritical(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc, "admin", "admin@euramax.eu", "ADMIN", true)

	result := criticalPhishing()
	result.Severity = detector.SeverityHigh

	summary, err := svc.SendThreatNotification(result, nil)
	require.NoError(t, err)
	assert.NotContains(t, summary.Results["admin"].Channels, ChannelSMS)
}

func TestHistoryRecorded(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc, "user1", "gebruiker@euramax.eu", "EMPLOYEE", false)

	_, err := svc.SendThreatNotification(criticalPhishing(), nil)
	require.NoError(t, err)

	records, err := svc.History(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "user1", records[0].UserID)
	assert.Equal(t, "phishing", records[0].ThreatType)
	assert.Equal(t, "critical", records[0].Severity)
	assert.Contains(t, records[0].Channels, ChannelEmail)
}

func TestUpdatePreferencesUpsert(t *testing.T) {
	svc := newTestService(t)

	pref := &models.NotificationPreference{
		UserID:       "nieuw",
		Email:        "nieuw@euramax.eu",
		EmailEnabled: true,
	}
	require.NoError(t, svc.UpdatePreferences(pref))

	stored, err := svc.Preferences("nieuw")
	require.NoError(t, err)
	assert.True(t, stored.EmailEnabled)
	assert.False(t, stored.SmsEnabled)

	pref.SmsEnabled = true
	pref.Phone = "+31600000000"
	require.NoError(t, svc.UpdatePreferences(pref))

	stored, err = svc.Preferences("nieuw")
	require.NoError(t, err)
	assert.True(t, stored.SmsEnabled)
	assert.Equal(t, "+31600000000", stored.Phone)
}

func TestPreferencesUnknownUser(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Preferences("bestaat-niet")
	assert.Error(t, err)
}

func TestSelectTemplateFallbacks(t *testing.T) {
	tests := []struct {
		name       string
		threatType detector.ThreatType
		severity   detector.Severity
		wantTitle  string
	}{
		{"critical phishing", detector.ThreatPhishing, detector.SeverityCritical, "KRITIEKE PHISHING-AANVAL GEDETECTEERD"},
		{"phishing fallback to medium", detector.ThreatPhishing, detector.SeverityInfo, "Verdachte Email Activiteit"},
		{"malware fallback to critical", detector.ThreatMalware, detector.SeverityLow, "KRITIEKE MALWARE GEDETECTEERD"},
		{"ddos fallback to high", detector.ThreatDDoS, detector.SeverityCritical, "DDoS-Aanval Gedetecteerd"},
		{"generic for ransomware", detector.ThreatRansomware, detector.SeverityHigh, "Ransomware Gedetecteerd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectTemplate(tt.threatType, tt.severity)
			assert.Equal(t, tt.wantTitle, got.Title)
		})
	}
}

func TestPersonalizeAddsRoleInstructions(t *testing.T) {
	base := SelectTemplate(detector.ThreatPhishing, detector.SeverityCritical)
	admin := &models.User{Name: "Beheerder", Role: "ADMIN"}
	employee := &models.User{Name: "Medewerker", Role: "EMPLOYEE"}

	adminT := Personalize(base, admin, criticalPhishing())
	employeeT := Personalize(base, employee, criticalPhishing())

	assert.Greater(t, len(adminT.Instructions), len(employeeT.Instructions))
	assert.Contains(t, adminT.Message, "aanvaller@evil.example")
	// base template untouched
	assert.NotContains(t, base.Message, "aanvaller@evil.example")
}

func TestEmailBodyContainsDetails(t *testing.T) {
	tmpl := SelectTemplate(detector.ThreatPhishing, detector.SeverityCritical)
	body := EmailBody("Beheerder", tmpl, criticalPhishing())

	assert.Contains(t, body, "Beste Beheerder")
	assert.Contains(t, body, "URGENTIE: KRITIEK")
	assert.Contains(t, body, "Betrouwbaarheid: 95%")
	assert.Contains(t, body, "15-03-2024")
}

func TestSMSBodyTruncates(t *testing.T) {
	tmpl := SelectTemplate(detector.ThreatPhishing, detector.SeverityCritical)
	sms := SMSBody(tmpl)

	assert.Contains(t, sms, "EURAMAX BEVEILIGING")
	assert.Contains(t, sms, "...")
	assert.Less(t, len(sms), 300)
}
