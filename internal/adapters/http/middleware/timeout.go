package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/shapeshift-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/logging"
)

// Timeout puts a deadline of d on the request context. The deadline flows
// into the ShapeShift round trip, whose failure maps to 504. A handler that
// returns silently after the deadline gets a TIMEOUT envelope here.
// Handlers are never preempted. A non-positive d disables the deadline.
func Timeout(d time.Duration) gin.HandlerFunc {
	if d <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if c.Writer.Written() || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}

		logging.FromContext(ctx).WarnContext(ctx, "request deadline passed without a response",
			slog.String("route", c.FullPath()),
			slog.Duration("timeout", d),
		)

		dto.RespondWithCode(c, dto.ErrorCodeTimeout, "request timeout exceeded")
	}
}
