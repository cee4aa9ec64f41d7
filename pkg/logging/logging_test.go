package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestOptionsFromEnv(t *testing.T) {
	env := map[string]string{"LOG_LEVEL": "error", "LOG_FORMAT": "JSON"}
	opts := OptionsFromEnv(func(k string) string { return env[k] })
	assert.Equal(t, slog.LevelError, opts.Level)
	assert.True(t, opts.JSON)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: slog.LevelWarn, JSON: true})

	logger.Info("dropped")
	logger.Warn("kept", "contact_id", 7)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, float64(7), rec["contact_id"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: slog.LevelDebug, NoColor: true})

	logger.Debug("Contact created", "contact_id", 7)
	assert.Contains(t, buf.String(), "Contact created")
	assert.Contains(t, buf.String(), "contact_id=7")
}
