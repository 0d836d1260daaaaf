package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the scheduler client.
type Config struct {
	// Environment is "development" or "production"
	Environment string

	// APIBaseURL is the base URL of the scheduling backend, without trailing slash
	APIBaseURL string

	// RequestThrottle is the minimum latency applied before every backend
	// request. This is a deliberate UX pacing constant carried over from the
	// product design, not a retry or backoff mechanism.
	RequestThrottle time.Duration

	// RedisURL configures the persisted session mirror. Empty means the
	// in-memory mirror is used instead.
	RedisURL string

	// Port is used by the mock backend server
	Port string

	LogLevel slog.Level
}

const (
	defaultAPIBaseURL = "http://localhost:8080"
	defaultThrottleMS = 500
	defaultPort       = "8080"
)

// LoadConfig reads configuration from the environment, with an optional .env
// file for local development.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		APIBaseURL:  getEnv("API_BASE_URL", defaultAPIBaseURL),
		RedisURL:    getEnv("REDIS_URL", ""),
		Port:        getEnv("PORT", defaultPort),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}

	throttleMS, err := strconv.Atoi(getEnv("REQUEST_THROTTLE_MS", strconv.Itoa(defaultThrottleMS)))
	if err != nil || throttleMS < 0 {
		return nil, fmt.Errorf("invalid REQUEST_THROTTLE_MS: %q", os.Getenv("REQUEST_THROTTLE_MS"))
	}
	cfg.RequestThrottle = time.Duration(throttleMS) * time.Millisecond

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
