// Package logger provides structured logging for content-desk.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the global logger instance.
var Logger *slog.Logger

func init() {
	// A usable default for tests and tools that never call Init.
	Logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

// Init initializes a JSON logger honoring LOG_LEVEL.
func Init() *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "level", level.String())

	return Logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
