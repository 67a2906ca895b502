package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init initialises the global logger.
// env: "development" or "production"
func Init(env string) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	if env == "development" {
		// Development: readable text output, debug level
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Production: JSON for log aggregation
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger returns the global logger.
func GetLogger() *slog.Logger {
	if log == nil {
		// Fallback when Init was not called
		Init("development")
	}
	return log
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

// Info logs an info message.
func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal logs an error message and exits with code 1.
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With returns a logger with extra fields attached.
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}
