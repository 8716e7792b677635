// Package middleware provides HTTP middleware components for the Gin server.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/logging"
)

// HeaderRequestID is the header name for request ID.
const HeaderRequestID = "X-Request-ID"

// RequestID returns middleware that assigns each request an ID.
// A well-formed inbound X-Request-ID is kept; otherwise a UUID v4 is generated.
// The ID is echoed in the response header, added to the context logger as
// request_id and forwarded on every ShapeShift call.
func RequestID() gin.HandlerFunc {
	return idMiddleware(HeaderRequestID, func(ctx context.Context, id string) context.Context {
		return logging.WithRequestID(ContextWithRequestID(ctx, id), id)
	})
}

// GetRequestID returns the request ID of the current request, or "".
func GetRequestID(c *gin.Context) string {
	return RequestIDFromContext(c.Request.Context())
}
