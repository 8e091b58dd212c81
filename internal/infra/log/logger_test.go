package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"legalsite/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := parseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNewWithWriter_JSONCarriesServiceName(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter(&buf, config.Log{Level: "info"}, "legalsite")
	require.NoError(t, err)

	logger.Info("content fetched", slog.String("path", "/api/services"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "legalsite", record["service"])
	assert.Equal(t, "/api/services", record["path"])
	assert.Equal(t, "content fetched", record["msg"])
}

func TestNewWithWriter_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter(&buf, config.Log{Level: "warn", Pretty: true}, "")
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
