package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings for downloading record assets.
type Config struct {
	UserAgent      string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	RetryMax       int
	RetryWaitMin   time.Duration
	RetryWaitMax   time.Duration
}

// Load reads the configuration from the environment.
// The .env file, if any, is loaded by the root command before this runs.
func Load() Config {
	return Config{
		UserAgent:      getEnv("DOSSIER_USER_AGENT", "Mozilla/5.0"),
		ConnectTimeout: getEnvDuration("DOSSIER_CONNECT_TIMEOUT", 10*time.Second),
		ReadTimeout:    getEnvDuration("DOSSIER_READ_TIMEOUT", 20*time.Second),
		RetryMax:       getEnvInt("DOSSIER_RETRY_MAX", 3),
		RetryWaitMin:   getEnvDuration("DOSSIER_RETRY_WAIT_MIN", 1*time.Second),
		RetryWaitMax:   getEnvDuration("DOSSIER_RETRY_WAIT_MAX", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
