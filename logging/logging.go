// Package logging builds the zerolog logger used by the CLI and handed to
// the library packages through their WithLogger options.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/valvenet/config"
)

// Logger is the zerolog logger shared by the CLI and the library options.
type Logger = zerolog.Logger

// New returns a logger writing to stderr: JSON lines by default, a
// human-readable console format when cfg.Pretty is set. An unknown level
// falls back to info.
func New(cfg config.Logging) Logger {
	return NewWriter(cfg, os.Stderr)
}

// NewWriter is New with an explicit destination.
func NewWriter(cfg config.Logging, w io.Writer) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
