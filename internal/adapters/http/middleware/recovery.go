package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/shapeshift-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/logging"
)

// Recovery turns a handler panic into a logged stack trace and a generic
// INTERNAL_ERROR envelope. The panic value never reaches the caller.
// Install it first so it covers every later middleware.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			ctx := c.Request.Context()
			logging.FromContextOr(ctx, logger).ErrorContext(ctx, "panic recovered",
				slog.Any("error", r),
				slog.String("method", c.Request.Method),
				slog.String("route", c.FullPath()),
				slog.String("trace_id", dto.GetTraceID(c)),
				slog.String("stack", string(debug.Stack())),
			)

			c.Abort()

			if !c.Writer.Written() {
				dto.RespondWithCode(c, dto.ErrorCodeInternal, "an internal error occurred")
			}
		}()

		c.Next()
	}
}
