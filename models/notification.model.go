package models

import "gorm.io/gorm"

// NotificationRecord is one fan-out delivery, kept as history
type NotificationRecord struct {
	gorm.Model
	NotificationID string `json:"notification_id" gorm:"uniqueIndex;not null"`
	UserID         string `json:"user_id" gorm:"index"`
	ThreatType     string `json:"threat_type"`
	Severity       string `json:"severity"`
	Title          string `json:"title"`
	Channels       string `json:"channels"` // JSON array of channel names actually delivered
	Status         string `json:"status" gorm:"default:SENT"`
}

// NotificationPreference holds per-user channel opt-ins and contact points
type NotificationPreference struct {
	gorm.Model
	UserID         string `json:"user_id" gorm:"uniqueIndex;not null"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PushToken      string `json:"push_token"`
	PushEnabled    bool   `json:"push_enabled" gorm:"default:true"`
	EmailEnabled   bool   `json:"email_enabled" gorm:"default:true"`
	SmsEnabled     bool   `json:"sms_enabled" gorm:"default:false"`
	DesktopEnabled bool   `json:"desktop_enabled" gorm:"default:true"`
}
