package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, uint32(5), cfg.Breaker.Threshold)
	assert.Equal(t, time.Minute, cfg.Breaker.Cooldown)
	assert.Equal(t, 4, cfg.Jobs.Workers)
	assert.Equal(t, 30*time.Second, cfg.Reddit.Timeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORE", "memory")
	t.Setenv("BREAKER_THRESHOLD", "3")
	t.Setenv("BREAKER_COOLDOWN", "15s")
	t.Setenv("REDDIT_BASE_URL", "http://localhost:9000")
	t.Setenv("JOBS_WORKERS", "8")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, uint32(3), cfg.Breaker.Threshold)
	assert.Equal(t, 15*time.Second, cfg.Breaker.Cooldown)
	assert.Equal(t, "http://localhost:9000", cfg.Reddit.BaseURL)
	assert.Equal(t, 8, cfg.Jobs.Workers)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("STORE", "redis")

	_, err := Load()
	require.Error(t, err)
}
