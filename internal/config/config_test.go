package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	os.Clearenv()

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected PORT default '8080', got '%s'", cfg.Port)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("expected empty DATABASE_URL, got '%s'", cfg.DatabaseURL)
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("expected DB_HOST default 'localhost', got '%s'", cfg.DBHost)
	}
	if cfg.DBPort != "5432" {
		t.Errorf("expected DB_PORT default '5432', got '%s'", cfg.DBPort)
	}
	if cfg.DBName != "indoor_system" {
		t.Errorf("expected DB_NAME default 'indoor_system', got '%s'", cfg.DBName)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LOG_LEVEL default 'info', got '%s'", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected LOG_FORMAT default 'json', got '%s'", cfg.LogFormat)
	}
	if cfg.SeedDemoRooms {
		t.Error("expected SEED_DEMO_ROOMS default false")
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/rooms")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SEED_DEMO_ROOMS", "true")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("DB_HOST")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SEED_DEMO_ROOMS")
	}()

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("expected PORT '9000', got '%s'", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://app:secret@db:5432/rooms" {
		t.Errorf("unexpected DATABASE_URL '%s'", cfg.DatabaseURL)
	}
	if cfg.DBHost != "db.internal" {
		t.Errorf("expected DB_HOST 'db.internal', got '%s'", cfg.DBHost)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LOG_LEVEL 'debug', got '%s'", cfg.LogLevel)
	}
	if !cfg.SeedDemoRooms {
		t.Error("expected SEED_DEMO_ROOMS true")
	}
}
