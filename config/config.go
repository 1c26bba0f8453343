package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	AppEnv string

	DBDriver   string // "postgres" or "sqlite"
	DBName     string
	SQLitePath string

	JWTKey    string
	SaltRound int

	// Notification channels
	SendgridApiKey    string
	EmailSender       string
	SmsApiKey         string
	SmsApiUrl         string
	PushWebhookUrl    string
	NotificationsDemo bool // log-only delivery, no external calls

	// Threat detection
	DetectionThreshold float64
	ScanCronSpec       string
	QuarantineDir      string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "8000"),
		AppEnv: getEnv("APP_ENV", "development"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBName:     getEnv("DB_NAME", "euramax"),
		SQLitePath: getEnv("SQLITE_PATH", "./euramax.db"),

		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		SendgridApiKey:    getEnv("SENDGRID_API_KEY", ""),
		EmailSender:       getEnv("EMAIL_SENDER", "noreply@euramax.eu"),
		SmsApiKey:         getEnv("SMS_API_KEY", ""),
		SmsApiUrl:         getEnv("SMS_API_URL", "https://api.messagebird.com/messages"),
		PushWebhookUrl:    getEnv("PUSH_WEBHOOK_URL", "https://api.euramax.eu/notifications"),
		NotificationsDemo: getEnvBool("NOTIFICATIONS_DEMO", true),

		DetectionThreshold: getEnvFloat("DETECTION_THRESHOLD", 0.5),
		ScanCronSpec:       getEnv("SCAN_CRON", "@every 5m"),
		QuarantineDir:      getEnv("QUARANTINE_DIR", "./quarantine"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendgridApiKey == "" && !AppConfig.NotificationsDemo {
		log.Println("Warning: SENDGRID_API_KEY not set, email notifications will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvFloat retrieves an environment variable as a float or returns the default float value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}

// getEnvBool retrieves an environment variable as a bool or returns the default bool value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
