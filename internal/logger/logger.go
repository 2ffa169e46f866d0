// Package logger provides logging utilities for ci-stats using the bullets library.
//
// It wraps [bullets.Logger] with constructors mapping the --log-level flag to a
// bullets level, plus a silent logger for tests and library defaults.
//
// Usage:
//
//	log := logger.NewLogger("debug")
//	log.Debug("Fetching builds")
//
//	progress := logger.NewUpdatable() // for in-place progress lines
//	silentLog := logger.NoLogger()    // Suppresses all output
package logger

import (
	"io"
	"os"

	"github.com/sgaunet/bullets"
)

// ParseLevel maps a level name to a bullets level.
// Unknown names fall back to info.
func ParseLevel(logLevel string) bullets.Level {
	switch logLevel {
	case "debug":
		return bullets.DebugLevel
	case "warn":
		return bullets.WarnLevel
	case "error":
		return bullets.ErrorLevel
	default:
		return bullets.InfoLevel
	}
}

// NewLogger creates a new logger that writes to stderr at the specified level.
// Stdout is kept for the chart itself.
//
// Parameters:
//   - logLevel: one of "debug", "info", "warn", "error" (defaults to "info" for unknown values)
func NewLogger(logLevel string) *bullets.Logger {
	return NewLoggerTo(os.Stderr, logLevel)
}

// NewLoggerTo creates a logger writing to w at the specified level.
func NewLoggerTo(w io.Writer, logLevel string) *bullets.Logger {
	logger := bullets.New(w)
	logger.SetLevel(ParseLevel(logLevel))
	return logger
}

// NewUpdatable creates an updatable logger on stderr used for progress handles.
func NewUpdatable() *bullets.UpdatableLogger {
	return bullets.NewUpdatable(os.Stderr)
}

// NoLogger creates a logger that suppresses all output by setting the level to Fatal.
// Useful for tests and silent operation.
func NoLogger() *bullets.Logger {
	logger := bullets.New(io.Discard)
	logger.SetLevel(bullets.FatalLevel)
	return logger
}
