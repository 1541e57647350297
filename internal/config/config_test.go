package config

import (
	"testing"
	"time"
)

const validSecret = "0123456789abcdef0123456789abcdef"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("MONGODB_CONNECTION_STRING", "mongodb://127.0.0.1:27017")
	t.Setenv("SESSION_SECRET", validSecret)
	t.Setenv("DB_NAME", "")
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("DEBUG_DASHBOARD", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DBName != "accounts" {
		t.Errorf("Expected default db name 'accounts', got %q", cfg.DBName)
	}
	if cfg.TokenTTL != 5*time.Minute {
		t.Errorf("Expected default token TTL of 5m, got %s", cfg.TokenTTL)
	}
	if cfg.DebugDashboard {
		t.Error("Expected debug dashboard to default to off")
	}
}

func TestLoadRequiresConnectionString(t *testing.T) {
	setRequired(t)
	t.Setenv("MONGODB_CONNECTION_STRING", "")

	if _, err := Load(); err == nil {
		t.Error("Expected an error without MONGODB_CONNECTION_STRING")
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Expected an error without SESSION_SECRET")
	}
}

func TestLoadRejectsShortSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("SESSION_SECRET", "too-short")

	if _, err := Load(); err == nil {
		t.Error("Expected an error for a secret under 32 characters")
	}
}

func TestLoadTokenTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_TTL", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TokenTTL != 90*time.Second {
		t.Errorf("Expected 90s TTL, got %s", cfg.TokenTTL)
	}
}

func TestLoadInvalidTokenTTLFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_TTL", "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TokenTTL != 5*time.Minute {
		t.Errorf("Expected fallback to 5m, got %s", cfg.TokenTTL)
	}
}
