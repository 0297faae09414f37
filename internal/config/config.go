package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	Email   EmailConfig
	SMS     SMSConfig
	Logging LoggingConfig
}

type EmailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	// OwnerEmail receives the booking/review/contact alerts.
	OwnerEmail string
}

// SMSConfig holds the Twilio credentials for the optional owner SMS alert.
// Enabled reports whether all of them are present.
type SMSConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	OwnerPhone string
}

func (c SMSConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != "" && c.OwnerPhone != ""
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment, after loading .env if one
// exists. A missing SendGrid key is not an error here: sends fail at send
// time instead, so the service still answers preflights and reports a clean
// error envelope.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port: getenv("PORT", "8080"),
		Email: EmailConfig{
			SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			FromEmail:      getenv("SENDGRID_FROM_EMAIL", "no-reply@sweetcafe.example"),
			FromName:       getenv("SENDGRID_FROM_NAME", "Sweet Cafe"),
			OwnerEmail:     getenv("CAFE_OWNER_EMAIL", "cafe@example.com"),
		},
		SMS: SMSConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			FromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
			OwnerPhone: os.Getenv("CAFE_OWNER_PHONE"),
		},
		Logging: LoggingConfig{
			Level:  getenv("LOG_LEVEL", "info"),
			Format: getenv("LOG_FORMAT", "json"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
