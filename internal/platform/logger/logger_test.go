package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json"}, zapcore.AddSync(&buf), zapcore.InfoLevel)

	log.Info("resolved alias", zap.String("alias", "opus"))
	log.Debug("filtered out")
	require.NoError(t, log.Sync())

	var entry map[string]interface{}
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "resolved alias", entry["msg"])
	assert.Equal(t, "opus", entry["alias"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_ColoredConsoleHighlightsFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "console", EnableColor: true}, zapcore.AddSync(&buf), zapcore.InfoLevel)

	log.Info("lookup", zap.String("alias", "haiku"))

	out := buf.String()
	assert.Contains(t, out, "lookup")
	assert.Contains(t, out, "\033[")
	assert.Contains(t, out, "haiku")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestShouldEnableColor(t *testing.T) {
	if v, ok := os.LookupEnv("NO_COLOR"); ok {
		require.NoError(t, os.Unsetenv("NO_COLOR"))
		t.Cleanup(func() { _ = os.Setenv("NO_COLOR", v) })
	}

	t.Setenv("LOG_COLOR", "0")
	assert.False(t, shouldEnableColor())

	t.Setenv("LOG_COLOR", "true")
	assert.True(t, shouldEnableColor())
}
