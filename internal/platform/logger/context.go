package logger

import (
	"context"
	"log/slog"
)

// contextKey is a private type for context keys defined in this package.
type contextKey struct{}

// loggerKey is the context key under which a request-scoped logger is
// stored.
var loggerKey = contextKey{}

// WithLogger returns a copy of the context carrying the given logger.
// Middleware uses this to attach a request-scoped logger (e.g. one that
// already carries the trace ID) for downstream handlers.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger stored in the context.
// Returns nil if no logger is present.
func FromContext(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok {
		return nil
	}
	return logger
}

// FromContextOrDefault retrieves the logger stored in the context, falling
// back to the given default when the context carries none. The fallback
// itself falls back to slog.Default when nil.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if logger := FromContext(ctx); logger != nil {
		return logger
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
