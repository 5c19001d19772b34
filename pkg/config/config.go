package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// GetString retrieves an environment variable or returns a fallback when unset.
func GetString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetInt retrieves an environment variable as integer or returns fallback.
func GetInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			log.Printf("invalid value for %s: %v", key, err)
			return fallback
		}
		return parsed
	}
	return fallback
}

// GetLevel retrieves an environment variable as a slog-style level name or
// returns fallback when unset or unrecognized.
func GetLevel(key string, fallback string) string {
	value := GetString(key, fallback)
	switch value {
	case "debug", "info", "warn", "error":
		return value
	}
	log.Printf("invalid value for %s: %q", key, value)
	return fallback
}

// minutes converts an integer env var into a duration.
func minutes(key string, fallback int) time.Duration {
	return time.Duration(GetInt(key, fallback)) * time.Minute
}
