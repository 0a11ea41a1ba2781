// Package logging builds the zerolog logger used for diagnostics.
// Conversion results go to stdout; diagnostics go through this logger to stderr.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Level is a minimum log level name.
type Level string

// Log levels.
const (
	LevelDebug    Level = "debug"
	LevelInfo     Level = "info"
	LevelWarn     Level = "warn"
	LevelError    Level = "error"
	LevelDisabled Level = "disabled"
)

// timeFormat keeps console lines short.
const timeFormat = "15:04:05"

// New returns a console logger writing to w at the given level.
// Unknown levels fall back to warn.
func New(w io.Writer, level Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: timeFormat,
		NoColor:    true,
	}
	return zerolog.New(console).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ForFlags picks the level from the CLI output flags.
// quiet wins over verbose.
func ForFlags(w io.Writer, quiet, verbose bool) zerolog.Logger {
	switch {
	case quiet:
		return New(w, LevelDisabled)
	case verbose:
		return New(w, LevelDebug)
	default:
		return New(w, LevelWarn)
	}
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

func parseLevel(level Level) zerolog.Level {
	switch Level(strings.ToLower(string(level))) {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelDisabled:
		return zerolog.Disabled
	}
	return zerolog.WarnLevel
}
