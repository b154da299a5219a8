// ABOUTME: zerolog setup for the back-office client
// ABOUTME: Console output by default, pure JSON when pretty mode is off

package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the root logger. Logs go to stderr so they never mix
// with command output on stdout.
func New(level string, pretty bool) zerolog.Logger {
	return NewWithOutput(level, pretty, os.Stderr)
}

// NewWithOutput builds a logger over an explicit writer.
func NewWithOutput(level string, pretty bool, out io.Writer) zerolog.Logger {
	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
