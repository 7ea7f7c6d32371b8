package logger

import (
	"testing"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, ParseLevel("warning"))
	assert.Equal(t, core.LogLevelError, ParseLevel("error"))
	assert.Equal(t, core.LogLevelInfo, ParseLevel(""))
	assert.Equal(t, core.LogLevelInfo, ParseLevel("verbose"))
}

func TestZapLogger_Fields(t *testing.T) {
	observed, logs := observer.New(zapcore.DebugLevel)
	logger := NewFromZap(zap.New(observed), core.LogLevelInfo)

	logger.Debug("hidden", nil)
	logger.Info("Registration completed", map[string]any{"user_id": "u1", "payment_method": "crypto"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Registration completed", entry.Message)
	assert.Equal(t, "u1", entry.ContextMap()["user_id"])
	assert.Equal(t, "crypto", entry.ContextMap()["payment_method"])
}

func TestZapLogger_SetLevel(t *testing.T) {
	observed, logs := observer.New(zapcore.DebugLevel)
	logger := NewFromZap(zap.New(observed), core.LogLevelInfo)

	logger.SetLevel(core.LogLevelError)
	logger.Warn("dropped", nil)
	logger.Error("kept", nil)

	assert.Equal(t, core.LogLevelError, logger.GetLevel())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
}

func TestNewZapLogger(t *testing.T) {
	logger, err := NewZapLogger(config.LoggerConfig{Level: "warn", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	assert.Equal(t, core.LogLevelWarn, logger.GetLevel())
	logger.Warn("Exchange rate fetch failed, using fallback rates", map[string]any{"error": "timeout"})
}

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()
	logger.SetLevel(core.LogLevelDebug)

	logger.Info("ignored", map[string]any{"k": "v"})
	assert.Equal(t, core.LogLevelDebug, logger.GetLevel())
	assert.NoError(t, logger.Flush())
}
