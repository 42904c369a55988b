package logging

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var defaultLogger = slog.Default()

// FromContext extracts the logger from context.
// Returns the default logger if no logger is found or ctx is nil.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}

	return defaultLogger
}

// WithContext stores a logger in the context.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithAttrs returns a context whose logger carries attrs.
func WithAttrs(ctx context.Context, attrs ...any) context.Context {
	return WithContext(ctx, FromContext(ctx).With(attrs...))
}

// WithRequestID adds a request ID to the logger in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return WithAttrs(ctx, slog.String("request_id", requestID))
}

// WithTraceID adds a trace ID to the logger in context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return WithAttrs(ctx, slog.String("trace_id", traceID))
}

// WithCorrelationID adds a correlation ID to the logger in context.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return WithAttrs(ctx, slog.String("correlation_id", correlationID))
}

// WithIssue tags the logger with the category being served.
func WithIssue(ctx context.Context, issue string) context.Context {
	return WithAttrs(ctx, slog.String("issue", issue))
}

// SetDefault sets the default logger used when no logger is in context.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}
