// Package logger builds the zerolog loggers used across the application.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EnvLevel overrides the default level when no flag is given.
const EnvLevel = "LIBBY_LOG_LEVEL"

// Options control logger construction.
type Options struct {
	Writer io.Writer
	Level  zerolog.Level
	JSON   bool
	// RunID tags every line of one process run. Generated when empty.
	RunID string
}

// New returns a root logger. Console output is used unless JSON is set.
func New(opts Options) zerolog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if !opts.JSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	return zerolog.New(w).
		Level(opts.Level).
		With().
		Timestamp().
		Str("run_id", runID).
		Logger()
}

// Component returns a child logger carrying the component field.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// Nop is a disabled logger for tests and defaults.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel maps a flag or environment value to a zerolog level.
// An empty string falls back to EnvLevel and then to info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		s = os.Getenv(EnvLevel)
	}
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}
