// internal/logger/logger.go
package logger

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog.Logger so callers never import zerolog directly.
type Logger struct {
	zerolog.Logger
}

// New configures the global log level and output format and returns the
// resulting logger. Verbose enables debug level, pretty switches from JSON
// to a human-readable console writer.
func New(verbose, pretty bool) Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return Logger{log.Logger}
}

// Global returns the current global logger.
func Global() Logger {
	return Logger{log.Logger}
}

// Ctx returns the logger stored in ctx, or a disabled logger when none is.
func Ctx(ctx context.Context) Logger {
	return Logger{*zerolog.Ctx(ctx)}
}

// WithComponent returns a child logger tagged with a component name.
func (l Logger) WithComponent(name string) Logger {
	return Logger{l.With().Str("component", name).Logger()}
}
