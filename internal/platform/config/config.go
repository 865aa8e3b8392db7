package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string
	SeedPath    string

	AuthSecret   string
	AuthTokenTTL time.Duration

	EnableTelemetryJournal bool
	TelemetryBufferSize    int
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "ruleset"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	seedPath := os.Getenv("SEED_PATH")
	if seedPath == "" {
		seedPath = "data/marketplace.seed.json"
	}

	secret := os.Getenv("AUTH_SECRET")
	if secret == "" {
		// Matches the documented local-dev default; override in real deployments.
		secret = "dev-only-change-me"
	}

	tokenTTL := 7 * 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("AUTH_TOKEN_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			tokenTTL = parsed
		}
	}

	bufferSize := 256
	if raw := strings.TrimSpace(os.Getenv("TELEMETRY_BUFFER_SIZE")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			bufferSize = parsed
		}
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		SeedPath:    seedPath,

		AuthSecret:   secret,
		AuthTokenTTL: tokenTTL,

		EnableTelemetryJournal: envBool("ENABLE_TELEMETRY_JOURNAL", true),
		TelemetryBufferSize:    bufferSize,
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
