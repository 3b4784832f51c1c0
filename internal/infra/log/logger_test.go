package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"comerciaya/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"DEBUG": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for input, want := range tests {
		got, err := parseLogLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNewLogger_JSONWithServiceAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "comerciaya"
	cfg.Env.Env = "local"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hello", slog.String("k", "v"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "comerciaya", line["service"])
	assert.Equal(t, "local", line["env"])
	assert.Equal(t, "v", line["k"])
}
