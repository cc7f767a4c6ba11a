package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration. It is loaded once at startup and
// passed explicitly into the components that need it; nothing reads it from
// package-level state.
type Config struct {
	Port      string
	SaltRound int

	PatientDBName string // store for patient records
	DataDBName    string // store for appointments, accounts and OTP codes

	SMTPHost      string
	SMTPPort      int
	EmailSender   string
	EmailPassword string // SMTP app password
	SendGridKey   string // when set, email goes out via SendGrid instead of SMTP

	AdminUsername string
	AdminPassword string

	LegacyHashing      bool // unsalted SHA-256, matches pre-existing password hashes
	RequireVerifiedOTP bool // gate registration completion on a verified OTP
}

// Load initializes configuration from environment variables or defaults.
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "5000"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		PatientDBName: getEnv("PATIENT_DB_NAME", "patient.db"),
		DataDBName:    getEnv("DATA_DB_NAME", "data.db"),

		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		EmailSender:   getEnv("EMAIL_SENDER", ""),
		EmailPassword: getEnv("EMAIL_PASSWORD", ""),
		SendGridKey:   getEnv("SENDGRID_API_KEY", ""),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "password"),

		LegacyHashing:      getEnvBool("LEGACY_HASHING", false),
		RequireVerifiedOTP: getEnvBool("REQUIRE_VERIFIED_OTP", false),
	}

	// Validate critical configuration
	if cfg.EmailSender == "" && cfg.SendGridKey == "" {
		log.Println("Warning: No email sender configured. OTP codes will only be logged to the console.")
	}
	if cfg.AdminPassword == "password" {
		log.Println("Warning: Using default ADMIN_PASSWORD. Update it in your environment.")
	}

	return cfg
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
