package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "SCREEN_SECRET", "SCREEN_TTL", "SWEEP_INTERVAL",
		"CORS_ALLOWED_ORIGINS", "METRICS_NAMESPACE", "WESPLIT_LOCALE", "TUI_LOG_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.HTTPAddr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.ScreenTTL)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "wesplit", cfg.MetricsNamespace)
	assert.Empty(t, cfg.Locale)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SCREEN_SECRET", "0123456789abcdef")
	t.Setenv("SCREEN_TTL", "5m")
	t.Setenv("SWEEP_INTERVAL", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("WESPLIT_LOCALE", "en_GB.UTF-8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.ScreenTTL)
	assert.Equal(t, time.Minute, cfg.SweepInterval, "invalid durations fall back to the default")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "en_GB.UTF-8", cfg.Locale)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing secret", cfg: Config{ScreenTTL: time.Minute}},
		{name: "short secret", cfg: Config{ScreenSecret: "short", ScreenTTL: time.Minute}},
		{name: "zero ttl", cfg: Config{ScreenSecret: "0123456789abcdef"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}
