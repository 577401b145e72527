package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "development")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("expected default read timeout 15s, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Log.Level != slog.LevelInfo {
		t.Errorf("expected default log level INFO, got %s", cfg.Log.Level)
	}
	if cfg.Store.RecentLimit != 5 {
		t.Errorf("expected default recent limit 5, got %d", cfg.Store.RecentLimit)
	}
	if !cfg.Store.SeedDefaultCategories {
		t.Error("expected default categories to be seeded by default")
	}
	if !cfg.RateLimit.Enabled {
		t.Error("expected rate limiting enabled outside the test environment")
	}
	if cfg.RateLimit.Window != time.Minute {
		t.Errorf("expected default rate limit window 1m, got %s", cfg.RateLimit.Window)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORE_RECENT_LIMIT", "10")
	t.Setenv("STORE_SEED_DEFAULT_CATEGORIES", "false")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "3")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg := Load()

	if cfg.Server.Environment != "production" {
		t.Errorf("expected environment production, got %s", cfg.Server.Environment)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != slog.LevelDebug {
		t.Errorf("expected log level DEBUG, got %s", cfg.Log.Level)
	}
	if cfg.Store.RecentLimit != 10 {
		t.Errorf("expected recent limit 10, got %d", cfg.Store.RecentLimit)
	}
	if cfg.Store.SeedDefaultCategories {
		t.Error("expected default categories to be disabled")
	}
	if cfg.RateLimit.MaxRequests != 3 {
		t.Errorf("expected 3 max requests, got %d", cfg.RateLimit.MaxRequests)
	}
	if cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("expected 30s window, got %s", cfg.RateLimit.Window)
	}
}

func TestLoad_TestEnvironmentDisablesRateLimit(t *testing.T) {
	t.Setenv("ENV", "test")

	if Load().RateLimit.Enabled {
		t.Error("expected rate limiting disabled in the test environment")
	}

	t.Setenv("RATE_LIMIT_ENABLED", "true")
	if !Load().RateLimit.Enabled {
		t.Error("expected explicit RATE_LIMIT_ENABLED to win")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("RATE_LIMIT_WINDOW", "soon")
	t.Setenv("STORE_SEED_DEFAULT_CATEGORIES", "maybe")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected fallback port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != slog.LevelInfo {
		t.Errorf("expected fallback log level INFO, got %s", cfg.Log.Level)
	}
	if cfg.RateLimit.Window != time.Minute {
		t.Errorf("expected fallback window 1m, got %s", cfg.RateLimit.Window)
	}
	if !cfg.Store.SeedDefaultCategories {
		t.Error("expected fallback to seeding default categories")
	}
}
