package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/mental-detox/internal/adapters/http/dto"
	"github.com/jsamuelsen/mental-detox/internal/platform/logging"
)

// Timeout returns middleware that gives each request a context deadline.
// Handlers must honor ctx.Done(); if the deadline passed and nothing was
// written, the request ends with 503 TIMEOUT.
func Timeout(timeout time.Duration, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok || timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Writer.Written() {
			return
		}

		logging.FromContext(ctx).Warn("request timeout",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("timeout", timeout),
		)

		dto.AbortWithError(c, dto.ErrorCodeTimeout, "request timeout exceeded")
	}
}
