// Package logging provides structured logging for cbase
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with additional convenience methods
type Logger struct {
	*slog.Logger
	level slog.Level
}

// New creates a new structured logger
func New(level, format string, output io.Writer) *Logger {
	if output == nil {
		output = os.Stderr
	}

	logLevel := parseLevel(level)

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
		level:  logLevel,
	}
}

// parseLevel converts string level to slog.Level
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsDebugEnabled returns true if debug logging is enabled
func (l *Logger) IsDebugEnabled() bool {
	return l.level <= slog.LevelDebug
}

// Success logs a success message (info level with success context)
func (l *Logger) Success(msg string, args ...any) {
	l.Info(msg, append([]any{"type", "success"}, args...)...)
}

// Failure logs a failure message (error level with failure context)
func (l *Logger) Failure(msg string, args ...any) {
	l.Error(msg, append([]any{"type", "failure"}, args...)...)
}

// Format logs a formatting-related message
func (l *Logger) Format(msg string, args ...any) {
	l.Debug(msg, append([]any{"category", "format"}, args...)...)
}

// Time logs a timestamp-related message
func (l *Logger) Time(msg string, args ...any) {
	l.Debug(msg, append([]any{"category", "time"}, args...)...)
}

// Lookup logs an error-description lookup message
func (l *Logger) Lookup(msg string, args ...any) {
	l.Debug(msg, append([]any{"category", "lookup"}, args...)...)
}

// WithBuffer returns a logger with buffer-capacity context
func (l *Logger) WithBuffer(capacity int) *Logger {
	return &Logger{
		Logger: l.With("capacity", capacity),
		level:  l.level,
	}
}
