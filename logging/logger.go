// Package logging provides structured logging for starhopper. It wraps the
// standard library slog package with a JSON handler and an environment-driven
// log level so the simulation can emit machine-readable session events.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with game-specific convenience methods.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with JSON output on stdout. The level is controlled by
// the STARHOPPER_LOG_LEVEL environment variable (DEBUG, INFO, WARN, ERROR)
// and defaults to INFO.
func New() *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	return &Logger{slog.New(handler)}
}

// Discard returns a Logger that drops everything. Used in tests.
func Discard() *Logger {
	return &Logger{slog.New(slog.DiscardHandler)}
}

// Error logs an error message, appending the error as a structured attribute
// when it is non-nil.
func (l *Logger) Error(msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.Logger.Error(msg, args...)
}

func levelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv("STARHOPPER_LOG_LEVEL")) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
