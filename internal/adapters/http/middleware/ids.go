// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/mental-detox/internal/adapters/http/dto"
	"github.com/jsamuelsen/mental-detox/internal/platform/logging"
)

const (
	// HeaderRequestID identifies a single HTTP exchange.
	HeaderRequestID = dto.HeaderRequestID

	// HeaderCorrelationID groups the requests of one client session.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key for the request ID.
	ContextKeyRequestID = dto.ContextKeyRequestID

	// ContextKeyCorrelationID is the gin context key for the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

type contextKey string

const (
	ctxKeyRequestID     contextKey = "request_id"
	ctxKeyCorrelationID contextKey = "correlation_id"
)

// RequestID returns middleware that takes X-Request-ID from the request or
// generates a UUID, echoes it in the response and adds it to the context logger.
func RequestID() gin.HandlerFunc {
	return idMiddleware(HeaderRequestID, ContextKeyRequestID, func(ctx context.Context, id string) context.Context {
		return logging.WithRequestID(ContextWithRequestID(ctx, id), id)
	})
}

// CorrelationID is RequestID for X-Correlation-ID. The terminal client sends
// one correlation ID for its whole session.
func CorrelationID() gin.HandlerFunc {
	return idMiddleware(HeaderCorrelationID, ContextKeyCorrelationID, func(ctx context.Context, id string) context.Context {
		return logging.WithCorrelationID(ContextWithCorrelationID(ctx, id), id)
	})
}

func idMiddleware(header, key string, enrich func(context.Context, string) context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(key, id)
		c.Header(header, id)
		c.Request = c.Request.WithContext(enrich(c.Request.Context(), id))

		c.Next()
	}
}

// GetRequestID returns the request ID stored by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation ID stored by CorrelationID, or "".
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}

// ContextWithRequestID stores a request ID for outbound propagation.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// ContextWithCorrelationID stores a correlation ID for outbound propagation.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID, id)
}

// RequestIDFromContext returns the request ID stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)
	return id
}

// CorrelationIDFromContext returns the correlation ID stored in ctx, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyCorrelationID).(string)
	return id
}
