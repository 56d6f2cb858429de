// Package logger provides the structured logger used across chatnotify.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// LogDirPermissions defines the permissions of a created log directory.
	LogDirPermissions = 0o700

	defaultMaxSizeMB  = 5
	defaultMaxBackups = 3
)

// Logger provides structured logging interface.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs warnings with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a new logger with additional key-value pairs.
	With(keysAndValues ...any) Logger
}

// SlogAdapter implements Logger on top of a slog.Logger backed by a LineHandler.
type SlogAdapter struct {
	log     *slog.Logger
	handler *LineHandler
}

// New creates a logger writing lines at or above level to w.
func New(w io.Writer, level Level) *SlogAdapter {
	h := NewLineHandler(w, level)

	return &SlogAdapter{log: slog.New(h), handler: h}
}

// FileOptions configures a rotating log file.
type FileOptions struct {
	// Path is the log file path. Its directory is created if missing.
	Path string

	// MaxSizeMB is the size in megabytes at which the file is rotated.
	MaxSizeMB int

	// MaxBackups is the number of rotated files kept.
	MaxBackups int
}

// NewFileLogger creates a logger writing to a size-rotated file.
func NewFileLogger(opts FileOptions, level Level) (*SlogAdapter, error) {
	if opts.Path == "" {
		return nil, errors.New("log file path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), LogDirPermissions); err != nil {
		return nil, errors.Wrap(err, "failed to create log directory")
	}

	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    positiveOr(opts.MaxSizeMB, defaultMaxSizeMB),
		MaxBackups: positiveOr(opts.MaxBackups, defaultMaxBackups),
	}

	return New(w, level), nil
}

// Debug logs debug-level messages.
func (l *SlogAdapter) Debug(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

// Info logs info-level messages.
func (l *SlogAdapter) Info(msg string, keysAndValues ...any) {
	l.log.Info(msg, keysAndValues...)
}

// Warn logs warnings.
func (l *SlogAdapter) Warn(msg string, keysAndValues ...any) {
	l.log.Warn(msg, keysAndValues...)
}

// Error logs error-level messages.
func (l *SlogAdapter) Error(msg string, keysAndValues ...any) {
	l.log.Error(msg, keysAndValues...)
}

// With returns a new logger with additional base key-value pairs.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (l *SlogAdapter) With(keysAndValues ...any) Logger {
	return &SlogAdapter{log: l.log.With(keysAndValues...), handler: l.handler}
}

// Enabled reports whether messages at level are written.
func (l *SlogAdapter) Enabled(level Level) bool {
	return l.log.Enabled(context.Background(), level.ToSlogLevel())
}

// Slog returns the underlying slog.Logger.
func (l *SlogAdapter) Slog() *slog.Logger {
	return l.log
}

// Close closes the underlying writer if it can be closed.
func (l *SlogAdapter) Close() error {
	return l.handler.Close()
}

// NoOpLogger is a logger that does nothing.
type NoOpLogger struct{}

// NewNoOpLogger creates a new NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug does nothing.
func (*NoOpLogger) Debug(string, ...any) {}

// Info does nothing.
func (*NoOpLogger) Info(string, ...any) {}

// Warn does nothing.
func (*NoOpLogger) Warn(string, ...any) {}

// Error does nothing.
func (*NoOpLogger) Error(string, ...any) {}

// With returns the same NoOpLogger.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (n *NoOpLogger) With(...any) Logger {
	return n
}

func positiveOr(v, fallback int) int {
	if v > 0 {
		return v
	}

	return fallback
}
