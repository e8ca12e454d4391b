// Package config loads settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	Port               string
	LogLevel           string
	ScreenSecret       string
	ScreenTTL          time.Duration
	SweepInterval      time.Duration
	CORSAllowedOrigins []string
	MetricsNamespace   string
	Locale             string
	TUILogPath         string
}

// Load reads configuration from environment variables and optional .env files.
// It does not check server-only settings; see Validate.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	return &Config{
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		LogLevel:           valueOrDefault(k.String("LOG_LEVEL"), "info"),
		ScreenSecret:       strings.TrimSpace(k.String("SCREEN_SECRET")),
		ScreenTTL:          parseDuration(k.String("SCREEN_TTL"), "30m"),
		SweepInterval:      parseDuration(k.String("SWEEP_INTERVAL"), "1m"),
		CORSAllowedOrigins: splitAndTrim(valueOrDefault(k.String("CORS_ALLOWED_ORIGINS"), "*")),
		MetricsNamespace:   valueOrDefault(k.String("METRICS_NAMESPACE"), "wesplit"),
		Locale:             strings.TrimSpace(k.String("WESPLIT_LOCALE")),
		TUILogPath:         strings.TrimSpace(k.String("TUI_LOG_PATH")),
	}, nil
}

// Validate checks the settings the RPC server cannot run without.
func (c *Config) Validate() error {
	if c.ScreenSecret == "" {
		return errors.New("SCREEN_SECRET is required")
	}
	if len(c.ScreenSecret) < 16 {
		return errors.New("SCREEN_SECRET must be at least 16 characters")
	}
	if c.ScreenTTL <= 0 {
		return errors.New("SCREEN_TTL must be positive")
	}
	return nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
