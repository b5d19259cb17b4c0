package config

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds the CLI's text logger at the configured level.
func (c LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.slogLevel()}))
}

func (c LoggingConfig) slogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
