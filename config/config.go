package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBDriver  string
	DBName    string
	JWTKey    string
	SaltRound int

	AppBaseURL string // Base URL used in password reset links

	EmailSender string
	SMTPHost    string
	SMTPPort    string
	Password    string // SMTP Password

	SMSApiURL string // SMS gateway endpoint, OTPs are logged when empty
	SMSApiKey string
	SMSSender string

	GoogleClientIDs []string // Accepted audiences for Google ID tokens
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
		Port:      getEnv("PORT", "3000"),
		DBDriver:  getEnv("DB_DRIVER", "postgres"),
		DBName:    getEnv("DB_NAME", "botapi"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:3000"),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    getEnv("SMTP_PORT", "587"),
		Password:    getEnv("SMTP_PASSWORD", ""),

		SMSApiURL: getEnv("SMS_API_URL", ""),
		SMSApiKey: getEnv("SMS_API_KEY", ""),
		SMSSender: getEnv("SMS_SENDER_ID", "BOTAPI"),

		GoogleClientIDs: getEnvList("GOOGLE_CLIENT_IDS"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if len(AppConfig.GoogleClientIDs) == 0 {
		log.Println("Warning: GOOGLE_CLIENT_IDS not set. Google login is disabled.")
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

// getEnvList retrieves a comma separated environment variable as a slice
func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
