package infra

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger aliases zerolog.Logger so packages outside infra can take a logger
// without importing the module directly.
type Logger = zerolog.Logger

// NewLogger builds the service logger: JSON on stdout, or a console writer at
// debug level in development.
func NewLogger(appEnv string) Logger {
	if appEnv == "development" {
		return newLogger(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}, appEnv)
	}
	return newLogger(os.Stdout, appEnv)
}

func newLogger(w io.Writer, appEnv string) Logger {
	level := zerolog.InfoLevel
	if appEnv == "development" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "bannerval").
		Str("env", appEnv).
		Logger()
}

// NewCLILogger logs human-readable lines to w, typically stderr, so that
// command output on stdout stays machine readable.
func NewCLILogger(w io.Writer, verbose bool) Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NopLogger discards everything. Tests and optional collaborators use it.
func NopLogger() *Logger {
	l := zerolog.New(io.Discard)
	return &l
}
