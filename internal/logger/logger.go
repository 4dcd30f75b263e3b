// Package logger provides structured logging for the pipeline, backed by
// zerolog. Every pipeline decision (regenerate/no-op, notify/no-op) is
// logged here so a run's behavior can be reconstructed from its output.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Fields represents structured log fields.
type Fields map[string]interface{}

var defaultLogger zerolog.Logger

func init() {
	defaultLogger = newLogger(zerolog.InfoLevel, os.Stderr)
}

func newLogger(level zerolog.Level, out io.Writer) zerolog.Logger {
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Setup reconfigures the default logger. Verbose enables debug output,
// console switches from JSON to human-readable lines.
func Setup(verbose, console bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	var out io.Writer = os.Stderr
	if console {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	defaultLogger = newLogger(level, out)
}

// SetOutput redirects the default logger, used by tests.
func SetOutput(out io.Writer) {
	defaultLogger = defaultLogger.Output(out)
}

// Debug logs a debug message with optional structured fields.
func Debug(message string, fields Fields) {
	defaultLogger.Debug().Fields(map[string]interface{}(fields)).Msg(message)
}

// Info logs an informational message with optional structured fields.
func Info(message string, fields Fields) {
	defaultLogger.Info().Fields(map[string]interface{}(fields)).Msg(message)
}

// Warn logs a warning message with optional structured fields.
func Warn(message string, fields Fields) {
	defaultLogger.Warn().Fields(map[string]interface{}(fields)).Msg(message)
}

// Error logs an error with optional structured fields.
func Error(message string, fields Fields, err error) {
	defaultLogger.Error().Err(err).Fields(map[string]interface{}(fields)).Msg(message)
}
