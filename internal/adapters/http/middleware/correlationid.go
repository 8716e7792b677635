package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/logging"
)

// HeaderCorrelationID is the header name for correlation ID.
// It spans a whole business flow, e.g. quote then shift then status polling.
const HeaderCorrelationID = "X-Correlation-ID"

// CorrelationID returns middleware that propagates the caller's correlation ID,
// or starts a new one. It is handled like RequestID and logged as correlation_id.
func CorrelationID() gin.HandlerFunc {
	return idMiddleware(HeaderCorrelationID, func(ctx context.Context, id string) context.Context {
		return logging.WithCorrelationID(ContextWithCorrelationID(ctx, id), id)
	})
}

// GetCorrelationID returns the correlation ID of the current request, or "".
func GetCorrelationID(c *gin.Context) string {
	return CorrelationIDFromContext(c.Request.Context())
}
