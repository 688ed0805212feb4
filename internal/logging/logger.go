// Package logging configures the zerolog logger used for diagnostics.
// Stdout is reserved for command output, so logs go to stderr by default.
package logging

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options controls logger construction.
type Options struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string
	// Format is "console" or "json".
	Format string
	// Out defaults to os.Stderr.
	Out io.Writer
}

// New builds a logger tagged with a fresh run_id.
func New(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	var writer io.Writer = out
	if opts.Format != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(writer).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Str("run_id", uuid.New().String()).
		Logger()
}

// ParseLevel maps a config level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
