package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	NATS     NATSConfig
	Metrics  MetricsConfig
}

// NATSConfig holds event publishing configuration. When URL is empty the
// driver falls back to the log publisher.
type NATSConfig struct {
	URL           string
	SubjectPrefix string
}

// MetricsConfig holds the Prometheus exposition settings for the driver.
// When Addr is empty no metrics endpoint is served.
type MetricsConfig struct {
	Addr      string
	Namespace string
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		NATS: NATSConfig{
			URL:           getEnv("NATS_URL", ""),
			SubjectPrefix: getEnv("NATS_SUBJECT_PREFIX", "vagn.cart"),
		},
		Metrics: MetricsConfig{
			Addr:      getEnv("METRICS_ADDR", ""),
			Namespace: getEnv("METRICS_NAMESPACE", "vagn"),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	// Publishing to a broker without a subject prefix would collide with
	// other tenants of the cluster.
	if cfg.NATS.URL != "" && cfg.NATS.SubjectPrefix == "" {
		return nil, fmt.Errorf("NATS_SUBJECT_PREFIX must be set when NATS_URL is configured")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
