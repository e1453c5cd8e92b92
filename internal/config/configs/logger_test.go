package configs

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Logger{Level: in}.SlogLevel(), in)
	}
}

func TestLoggerJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(Logger{Level: "info", Format: "json"}.Handler(&buf))

	logger.Debug("hidden")
	logger.Info("sync job queued", slog.String("job_id", "j1"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "sync job queued", line["msg"])
	assert.Equal(t, "j1", line["job_id"])
}
