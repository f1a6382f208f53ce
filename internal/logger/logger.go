// Package logger builds the service's zap loggers
package logger

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/raid-planner/internal/errors"
)

// Modes accepted by New
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Config selects the encoder and minimum level
type Config struct {
	Mode  string
	Level string
}

// New builds a logger. Production mode writes JSON, anything else writes
// the console encoder. An empty level means info.
func New(cfg Config) (*zap.Logger, error) {
	var zc zap.Config
	switch strings.ToLower(cfg.Mode) {
	case "prod", ModeProduction:
		zc = zap.NewProductionConfig()
	case "", "dev", ModeDevelopment:
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, errors.InvalidArgumentf("unknown log mode %q", cfg.Mode)
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
			return nil, errors.InvalidArgumentf("unknown log level %q", cfg.Level)
		}
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	l, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return l, nil
}

// OrNop returns l, or a no-op logger when l is nil
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// InterceptorLogger adapts a zap logger to the grpc logging interceptor
func InterceptorLogger(l *zap.Logger) logging.Logger {
	base := OrNop(l).WithOptions(zap.AddCallerSkip(1))
	return logging.LoggerFunc(func(_ context.Context, lvl logging.Level, msg string, fields ...any) {
		zf := make([]zap.Field, 0, len(fields)/2)
		iter := logging.Fields(fields).Iterator()
		for iter.Next() {
			k, v := iter.At()
			zf = append(zf, zap.Any(k, v))
		}

		logger := base.With(zf...)
		switch lvl {
		case logging.LevelDebug:
			logger.Debug(msg)
		case logging.LevelInfo:
			logger.Info(msg)
		case logging.LevelWarn:
			logger.Warn(msg)
		default:
			logger.Error(msg)
		}
	})
}
