// Package logger builds the process logger and the attribute helpers shared by all packages.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Module provides *slog.Logger and *zap.Logger
var Module = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewZap,
	),
)

// NewLogger creates the application logger.
// LOG_LEVEL selects the level (debug, info, warn, error; default info).
// APP_ENV=development uses a human-readable text handler, anything else JSON.
func NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: levelFromEnv()}

	var handler slog.Handler
	if isDevelopment() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

// NewZap creates a zap logger with the same level and encoding rules as NewLogger.
// It backs tooling that wants a printf-style logger (goose).
func NewZap() (*zap.Logger, error) {
	var cfg zap.Config
	if isDevelopment() {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(levelFromEnv()))
	return cfg.Build()
}

// Scope returns the attribute used to tag log lines with their component
func Scope(name string) slog.Attr {
	return slog.String("scope", name)
}

// Error returns an attribute carrying err
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isDevelopment() bool {
	env := strings.ToLower(os.Getenv("APP_ENV"))
	return env == "" || env == "development"
}

func zapLevel(l slog.Level) zapcore.Level {
	switch {
	case l <= slog.LevelDebug:
		return zapcore.DebugLevel
	case l <= slog.LevelInfo:
		return zapcore.InfoLevel
	case l <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
