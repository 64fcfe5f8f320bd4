// Package config centralises configuration parsing for the activities
// service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures runtime configuration values for the activities service.
type Config struct {
	HTTPAddress     string
	TeachersFile    string        // Path to the JSON teacher credential file.
	StaticDir       string        // Directory served under /static.
	SessionTTL      time.Duration // Zero disables session expiry.
	EnforceCapacity bool          // Reject signups once a roster is full.
}

// Load reads environment variables into Config, applying sensible
// defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		TeachersFile:    getEnv("TEACHERS_FILE", "./teachers.json"),
		StaticDir:       getEnv("STATIC_DIR", "./web/static"),
		SessionTTL:      getDurationEnv("SESSION_TTL", 0),
		EnforceCapacity: getBoolEnv("ENFORCE_CAPACITY", true),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
