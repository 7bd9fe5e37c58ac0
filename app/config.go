package app

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the process configuration, read from the environment with
// optional .env support.
type Config struct {
	ProjectID       string
	DatabaseURL     string
	CredentialsFile string
	Timezone        string
	ReminderPoll    time.Duration
}

// LoadConfig reads the environment. Defaults target the production project;
// an empty credentials file falls back to application default credentials.
func LoadConfig() Config {
	_ = godotenv.Load()

	poll := 30 * time.Second
	if raw := os.Getenv("REMINDER_POLL_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			poll = parsed
		}
	}

	return Config{
		ProjectID:       getEnv("FIREBASE_PROJECT_ID", "walhallaapp"),
		DatabaseURL:     getEnv("FIREBASE_DATABASE_URL", "https://walhallaapp.firebaseio.com/"),
		CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
		Timezone:        getEnv("TIMEZONE", "Europe/Berlin"),
		ReminderPoll:    poll,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
