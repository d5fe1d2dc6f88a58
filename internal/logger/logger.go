// Package logger wraps zerolog.Logger with the constructors and context
// helpers used across the application. Embedding zerolog.Logger keeps the
// full zerolog API available on *Logger.
package logger

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger struct {
	zerolog.Logger
}

// New constructs a JSON logger writing to stdout. Every entry carries the
// given role label (e.g. "server", "worker") and a timestamp.
func New(role string) *Logger {
	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a logger that discards everything. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a copy of the logger that can be enriched with extra fields
// without touching the parent.
func (l *Logger) Child() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext returns the logger attached to ctx via zerolog's WithContext,
// falling back to zerolog's global logger when none is attached.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
