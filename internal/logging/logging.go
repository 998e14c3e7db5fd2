// Package logging builds the zerolog loggers shared by page objects and the
// maintenance scripts.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// zerolog keeps these process-wide; they are set once, never per logger.
func init() {
	zerolog.DurationFieldInteger = true
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().In(time.Local)
	}
}

// New returns a logger writing to w at the given level. Unknown levels fall
// back to info, an empty writer to stderr.
func New(level, format string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
