package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "CORS_ALLOWED_ORIGINS", "CACHE_MAX_ITEMS", "UPSTREAM_MAX_RPM", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.AllowAllOrigins())
	assert.Equal(t, 10000, cfg.CacheMaxItems)
	assert.Equal(t, 60, cfg.UpstreamMaxRPM)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://dash.example.com, http://localhost:5173 ,")
	t.Setenv("CACHE_MAX_ITEMS", "500")
	t.Setenv("PREFETCH_SCHEDULE", "")
	t.Setenv("UPSTREAM_MAX_RPM", "abc")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://dash.example.com", "http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AllowAllOrigins())
	assert.Equal(t, 500, cfg.CacheMaxItems)
	assert.Empty(t, cfg.PrefetchSchedule, "an explicitly empty schedule disables prefetch")
	assert.Equal(t, 60, cfg.UpstreamMaxRPM)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}
