// Package logger builds the slog loggers used by the CLI.
package logger

import (
	"io"
	"log/slog"
	"time"
)

type Config struct {
	// Out receives log records. Nil discards them.
	Out   io.Writer
	Debug bool
	JSON  bool
}

// New returns a logger writing to cfg.Out. Debug lowers the level and adds source positions.
func New(cfg Config) *slog.Logger {
	if cfg.Out == nil {
		return Discard()
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	}

	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(cfg.Out, opts))
	}
	return slog.New(slog.NewTextHandler(cfg.Out, opts))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
