package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// DefaultTokenTTL is the validity window for issued tokens (5 minutes,
// same as the original deployment).
const DefaultTokenTTL = 5 * time.Minute

// Config holds everything the binaries read from the environment.
type Config struct {
	MongoURI       string
	DBName         string
	Port           string
	SessionSecret  string
	TokenTTL       time.Duration
	DebugDashboard bool
}

// Load reads configuration from the environment. The connection string and
// the signing secret are required; startup must not proceed without them.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:      strings.TrimSpace(os.Getenv("MONGODB_CONNECTION_STRING")),
		DBName:        strings.TrimSpace(os.Getenv("DB_NAME")),
		Port:          strings.TrimSpace(os.Getenv("PORT")),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		TokenTTL:      DefaultTokenTTL,
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_CONNECTION_STRING must be set")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET must be set")
	}
	if len(cfg.SessionSecret) < 32 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 32 characters long (current: %d)", len(cfg.SessionSecret))
	}

	if cfg.DBName == "" {
		cfg.DBName = "accounts"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		dur, err := time.ParseDuration(ttl)
		if err != nil || dur <= 0 {
			log.Printf("invalid TOKEN_TTL=%q, using default %s", ttl, cfg.TokenTTL)
		} else {
			cfg.TokenTTL = dur
		}
	}

	cfg.DebugDashboard = strings.EqualFold(strings.TrimSpace(os.Getenv("DEBUG_DASHBOARD")), "true")

	return cfg, nil
}
