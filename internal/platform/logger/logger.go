package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Anastasia-front/contacts-api/internal/config"
)

type contextKey struct{}

// ParseLevel converts a configured level name into a slog.Level.
// Unknown names fall back to info and report ok=false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup initializes the application's logging system based on the provided
// configuration. It creates a structured JSON logger on stdout and sets it as
// the default logger for the application.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	return New(os.Stdout, cfg.LogLevel), nil
}

// New builds a JSON logger writing to out and installs it as the default.
func New(out io.Writer, levelName string) *slog.Logger {
	level, ok := ParseLevel(levelName)

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", levelName,
			"default_level", "info")
	}

	slog.SetDefault(logger)
	return logger
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOrDefault(ctx, slog.Default())
}

// FromContextOrDefault returns the logger stored in ctx, or fallback.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return fallback
}
