package logger_test

import (
	"context"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KirkDiggler/raid-planner/internal/errors"
	"github.com/KirkDiggler/raid-planner/internal/logger"
)

func TestNewModes(t *testing.T) {
	l, err := logger.New(logger.Config{Mode: logger.ModeProduction, Level: "warn"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = logger.New(logger.Config{})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsUnknownSettings(t *testing.T) {
	_, err := logger.New(logger.Config{Mode: "verbose"})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = logger.New(logger.Config{Level: "loud"})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestInterceptorLoggerMapsLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	il := logger.InterceptorLogger(zap.New(core))

	il.Log(context.Background(), logging.LevelWarn, "finished call", "grpc.method", "CalculatePriority", "grpc.code", "OK")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "finished call", entries[0].Message)
	assert.Equal(t, "CalculatePriority", entries[0].ContextMap()["grpc.method"])
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, logger.OrNop(nil))
}
