// Package logger wraps zerolog.Logger with the constructors and context
// helpers used across the backend. The wrapper embeds zerolog.Logger, so the
// full zerolog API is available on *Logger.
package logger

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New builds the process-wide JSON logger. The component label distinguishes
// entries from different parts of the application (e.g. "api", "genai").
func New(component string) *Logger {
	l := zerolog.New(os.Stdout).With().
		Str("component", component).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// With returns a child logger carrying an extra string field.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{l.Logger.With().Str(key, value).Logger()}
}

// FromContext extracts the request-scoped logger attached by the logging
// middleware. zerolog falls back to its global logger when the context
// carries none, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
