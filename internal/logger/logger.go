// Package logger wraps a single global zap.Logger, configured from the
// environment the way the rest of the ambient stack reads configuration.
package logger

import (
	"os"

	"go.uber.org/zap"
)

var globalLogger *zap.Logger

// Init initializes the global logger. logLevel overrides MKBSC_LOG_LEVEL
// / the "info" default when non-nil.
func Init(logLevel *string) error {
	var err error

	env := os.Getenv("GO_ENV")
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	appliedLogLevel := os.Getenv("MKBSC_LOG_LEVEL")
	if logLevel != nil {
		appliedLogLevel = *logLevel
	}

	switch appliedLogLevel {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	globalLogger, err = config.Build()
	if err != nil {
		return err
	}
	return nil
}

// Get returns the global logger, falling back to a development logger if
// Init was never called (useful in tests).
func Get() *zap.Logger {
	if globalLogger == nil {
		globalLogger, _ = zap.NewDevelopment()
	}
	return globalLogger
}

// Sync flushes the logger's buffered entries.
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// WithContext returns a logger annotated with additional fields.
func WithContext(fields ...zap.Field) *zap.Logger {
	return Get().With(fields...)
}

// WithGameContext returns a logger annotated with a game id.
func WithGameContext(gameID string) *zap.Logger {
	if gameID == "" {
		return Get()
	}
	return Get().With(zap.String("game_id", gameID))
}
