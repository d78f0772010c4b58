package logger

import (
	"context"
	"log/slog"
)

// loggerContextKey is the private context key for request-scoped loggers.
type loggerContextKey struct{}

// WithLogger returns a context carrying the given logger. Middleware
// uses this to attach a request-scoped logger (with trace ID) that
// downstream layers can pick up.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContextOrDefault retrieves the logger from the context, falling
// back to the provided default (or slog.Default if that is nil too).
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
