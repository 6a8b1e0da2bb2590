// Package logging wraps charmbracelet/log with the small surface richmd
// needs: a shared default logger, level parsing, and context plumbing for
// command-scoped loggers.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Shared default logger, built on first use.
var (
	defaultLogger *log.Logger
	defaultOnce   sync.Once
)

// New creates a stderr logger at the given level. Unrecognized levels fall
// back to info.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

// Default returns the shared logger, creating it at info level on first use.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		if defaultLogger == nil {
			defaultLogger = New("info")
		}
	})
	return defaultLogger
}

// SetDefault replaces the shared logger.
func SetDefault(logger *log.Logger) {
	defaultLogger = logger
}

// SetLevel adjusts the shared logger's level in place.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}

// parseLevel maps a level name onto charm's levels, accepting "warning" as
// an alias for warn.
func parseLevel(level string) log.Level {
	if strings.EqualFold(level, "warning") {
		return log.WarnLevel
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return parsed
}
