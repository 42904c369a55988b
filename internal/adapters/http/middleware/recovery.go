package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/mental-detox/internal/adapters/http/dto"
	"github.com/jsamuelsen/mental-detox/internal/platform/logging"
)

// Recovery returns middleware that turns a handler panic into a 500 error
// envelope and logs the stack. Apply it first so it wraps everything else.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			traceID := dto.GetTraceID(c)

			logging.FromContext(c.Request.Context()).Error("panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("trace_id", traceID),
			)

			dto.AbortWithError(c, dto.ErrorCodeInternal, "an internal error occurred")
		}()

		c.Next()
	}
}
