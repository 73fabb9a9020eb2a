package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/learning-log/internal/config"
)

// NewLogger builds the process logger from cfg, writes to stderr and
// installs it as the slog default.
//
// Format "json" is for production, "text" adds source locations for
// development. Unknown levels fall back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("app", appName))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
