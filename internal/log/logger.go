// Package log builds the zerolog logger used by the almanac CLI.
package log

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/rangemap/internal/config"
)

// New returns a logger writing to w at the configured level, as JSON for
// config.LogFormatJSON and as human-readable console lines otherwise.
func New(cfg config.Config, w io.Writer) zerolog.Logger {
	return NewWithFormat(w, cfg.LogFormat, cfg.LogLevel)
}

// NewWithFormat returns a logger for an explicit format and level name.
func NewWithFormat(w io.Writer, format config.LogFormat, level string) zerolog.Logger {
	out := w
	if format != config.LogFormatJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel maps DEBUG, INFO, WARN/WARNING, ERROR (any case) to zerolog
// levels. Anything else is treated as INFO.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
