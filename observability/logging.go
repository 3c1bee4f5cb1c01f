// Package observability provides the slog-backed logger used by fnkit
// consumers and by the functional Log* taps.
package observability

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel represents logging severity levels.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// ParseLevel maps a level name to a LogLevel. Unknown names map to info.
func ParseLevel(name string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger is the leveled logging surface. It is a superset of
// functional.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Options configures NewLogger.
type Options struct {
	Level  LogLevel
	Format string // "json" or "text"
	Output io.Writer
}

// DefaultLogger implements Logger using slog and redacts sensitive keys.
type DefaultLogger struct {
	logger *slog.Logger
	level  LogLevel
}

// NewLogger creates a logger from opts. Output defaults to stderr and
// format defaults to JSON.
func NewLogger(opts Options) *DefaultLogger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: mapToSlogLevel(opts.Level)}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "text") {
		handler = slog.NewTextHandler(out, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(out, handlerOpts)
	}
	return &DefaultLogger{logger: slog.New(handler), level: opts.Level}
}

// NewLoggerWithHandler creates a logger with a custom handler.
func NewLoggerWithHandler(handler slog.Handler) *DefaultLogger {
	return &DefaultLogger{
		logger: slog.New(handler),
		level:  LogLevelInfo,
	}
}

func mapToSlogLevel(level LogLevel) slog.Level {
	switch level {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Level returns the configured minimum level.
func (l *DefaultLogger) Level() LogLevel {
	return l.level
}

// With returns a logger that always includes args.
func (l *DefaultLogger) With(args ...any) *DefaultLogger {
	return &DefaultLogger{logger: l.logger.With(filterSensitiveArgs(args)...), level: l.level}
}

// Slog exposes the underlying *slog.Logger.
func (l *DefaultLogger) Slog() *slog.Logger {
	return l.logger
}

// Debug logs a debug message without a context.
func (l *DefaultLogger) Debug(msg string, args ...any) {
	l.DebugContext(context.Background(), msg, args...)
}

// Info logs an info message without a context.
func (l *DefaultLogger) Info(msg string, args ...any) {
	l.InfoContext(context.Background(), msg, args...)
}

// Warn logs a warning message without a context.
func (l *DefaultLogger) Warn(msg string, args ...any) {
	l.WarnContext(context.Background(), msg, args...)
}

// Error logs an error message without a context.
func (l *DefaultLogger) Error(msg string, args ...any) {
	l.ErrorContext(context.Background(), msg, args...)
}

// DebugContext logs a debug message.
func (l *DefaultLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, filterSensitiveArgs(args)...)
}

// InfoContext logs an info message.
func (l *DefaultLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, filterSensitiveArgs(args)...)
}

// WarnContext logs a warning message.
func (l *DefaultLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, filterSensitiveArgs(args)...)
}

// ErrorContext logs an error message.
func (l *DefaultLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, filterSensitiveArgs(args)...)
}

// filterSensitiveArgs replaces values of sensitive keys with [REDACTED].
// A trailing key without a value is passed through for slog to report.
func filterSensitiveArgs(args []any) []any {
	filtered := make([]any, 0, len(args))
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			filtered = append(filtered, args[i])
			break
		}
		key, ok := args[i].(string)
		if ok && IsSensitiveKey(key) {
			filtered = append(filtered, key, "[REDACTED]")
			continue
		}
		filtered = append(filtered, args[i], args[i+1])
	}
	return filtered
}

var sensitiveKeys = []string{
	"token", "secret", "password", "credential", "authorization", "api_key", "apikey",
}

// IsSensitiveKey reports whether key likely names sensitive data.
func IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// NopLogger is a no-op logger for testing or disabling logs.
type NopLogger struct{}

// Debug does nothing.
func (NopLogger) Debug(string, ...any) {}

// Info does nothing.
func (NopLogger) Info(string, ...any) {}

// Warn does nothing.
func (NopLogger) Warn(string, ...any) {}

// Error does nothing.
func (NopLogger) Error(string, ...any) {}
