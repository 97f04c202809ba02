// Package config holds the deployment constants and the env-backed runtime
// configuration for the Namma Report backend.
package config

import (
	"os"
	"time"
)

const (
	AppName = "Namma Report"

	// Single fixed deployment site (RVCE campus, Bengaluru).
	DeploymentLat = 12.9240
	DeploymentLon = 77.4990

	// Simulated latency for the fake delivery/analysis channels.
	DefaultCodeSendDelay = 1 * time.Second
	DefaultAnalysisDelay = 1500 * time.Millisecond

	DefaultTelemetryInterval = 5 * time.Second
	DefaultTokenTTL          = 72 * time.Hour
)

// Config is the runtime configuration loaded from the environment.
type Config struct {
	Addr        string
	JWTSecret   string
	AdminMobile string
	LocalesDir  string

	// NotifyDriver selects the simulated SMS backend: "console" or "redis".
	NotifyDriver  string
	RedisAddr     string
	NotifyChannel string

	// IntegrityTags enables the cosmetic per-ticket fingerprint.
	IntegrityTags bool

	CodeSendDelay     time.Duration
	AnalysisDelay     time.Duration
	TelemetryInterval time.Duration
	TokenTTL          time.Duration
}

// Load reads the configuration from the environment, applying defaults for
// anything unset. godotenv is expected to have populated the environment
// beforehand (see cmd/main.go).
func Load() Config {
	return Config{
		Addr:              getEnv("ADDR", ":8080"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
		AdminMobile:       getEnv("ADMIN_MOBILE", "9999999999"),
		LocalesDir:        getEnv("LOCALES_DIR", "locales"),
		NotifyDriver:      getEnv("NOTIFY_DRIVER", "console"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		NotifyChannel:     getEnv("NOTIFY_CHANNEL", "sms:outbound"),
		IntegrityTags:     getEnv("INTEGRITY_TAGS", "true") == "true",
		CodeSendDelay:     getDuration("CODE_SEND_DELAY", DefaultCodeSendDelay),
		AnalysisDelay:     getDuration("ANALYSIS_DELAY", DefaultAnalysisDelay),
		TelemetryInterval: getDuration("TELEMETRY_INTERVAL", DefaultTelemetryInterval),
		TokenTTL:          getDuration("TOKEN_TTL", DefaultTokenTTL),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
