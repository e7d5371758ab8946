// Package logger provides charmbracelet/log loggers for diagnostics. Callers
// point them at stderr; stdout carries the report.
package logger

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewWithConfig creates a text logger on w with the given level.
func NewWithConfig(w io.Writer, prefix string, level log.Level, showTimestamp bool) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    false,
		ReportTimestamp: showTimestamp,
		Formatter:       log.TextFormatter,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel maps a config level name to a log level, falling back to warn.
func ParseLevel(level string) log.Level {
	l, err := log.ParseLevel(level)
	if err != nil {
		return log.WarnLevel
	}
	return l
}
