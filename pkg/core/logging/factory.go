// ============================================================================
// mathsex - Exakte Brueche und Zahlentheorie
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from string settings
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mxlog "github.com/msto63/mathsex/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, shown in text output
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format (json, text, console, logfmt; default: text)
	Format string

	// Primary output (default: stderr)
	Output io.Writer

	// Additional outputs besides the primary one
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a Foundation logger. Unknown level or format strings
// fall back to the defaults of DefaultLoggerConfig.
func NewLogger(cfg LoggerConfig) *mxlog.Logger {
	level := parseLevel(cfg.Level)

	format, err := mxlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mxlog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mxlog.NewWithConfig(mxlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}

// NewRequestLogger creates a logger like NewLogger and tags every entry
// with a fresh request id
func NewRequestLogger(cfg LoggerConfig) *mxlog.Logger {
	return NewLogger(cfg).WithRequestID(NewRequestID())
}

// NewRequestID returns a random request id
func NewRequestID() string {
	return uuid.NewString()
}

// parseLevel converts a string level to mxlog.Level
func parseLevel(level string) mxlog.Level {
	l, err := mxlog.ParseLevel(level)
	if err != nil {
		return mxlog.LevelWarn
	}
	return l
}
