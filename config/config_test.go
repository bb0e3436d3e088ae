package config

import (
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("AVAILABILITY_CACHE_TTL", "")
	t.Setenv("AVAILABILITY_CACHE_READ", "")
	t.Setenv("AVAILABILITY_DEFAULT_SERVICE_DURATION", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("MIGRATIONS_DIR", "")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Availability.CacheTTL != 10*time.Minute {
		t.Fatalf("expected default ttl 10m, got %s", cfg.Availability.CacheTTL)
	}
	if cfg.Availability.CacheRead {
		t.Fatalf("expected cache read disabled by default")
	}
	if cfg.Availability.DefaultServiceDuration != 60 {
		t.Fatalf("expected default duration 60, got %d", cfg.Availability.DefaultServiceDuration)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("expected redis disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.LogLevel != "info" || cfg.MigrationsDir != "./migrations" {
		t.Fatalf("unexpected defaults: log level %q, migrations %q", cfg.LogLevel, cfg.MigrationsDir)
	}
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("AVAILABILITY_CACHE_TTL", "90s")
	t.Setenv("AVAILABILITY_CACHE_READ", "true")
	t.Setenv("AVAILABILITY_DEFAULT_SERVICE_DURATION", "45")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Availability.CacheTTL != 90*time.Second {
		t.Fatalf("expected ttl 90s, got %s", cfg.Availability.CacheTTL)
	}
	if !cfg.Availability.CacheRead {
		t.Fatalf("expected cache read enabled")
	}
	if cfg.Availability.DefaultServiceDuration != 45 {
		t.Fatalf("expected duration 45, got %d", cfg.Availability.DefaultServiceDuration)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 2 {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
}

func TestNewConfigRejectsInvalidTTL(t *testing.T) {
	t.Setenv("AVAILABILITY_CACHE_TTL", "soon")
	if _, err := NewConfig(); err == nil {
		t.Fatalf("expected error for malformed ttl")
	}

	t.Setenv("AVAILABILITY_CACHE_TTL", "0s")
	if _, err := NewConfig(); err == nil {
		t.Fatalf("expected error for non-positive ttl")
	}
}
