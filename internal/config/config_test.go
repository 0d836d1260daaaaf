package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.APIBaseURL != defaultAPIBaseURL {
		t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
	}
	if cfg.RequestThrottle != 500*time.Millisecond {
		t.Errorf("RequestThrottle = %v, want 500ms", cfg.RequestThrottle)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://backend:9000")
	t.Setenv("REQUEST_THROTTLE_MS", "0")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.APIBaseURL != "http://backend:9000" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.RequestThrottle != 0 {
		t.Errorf("RequestThrottle = %v, want 0", cfg.RequestThrottle)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestLoadConfig_BadThrottle(t *testing.T) {
	t.Setenv("REQUEST_THROTTLE_MS", "soon")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for non-numeric throttle")
	}
}
