package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxIDLength caps inbound IDs. Longer values are replaced.
const maxIDLength = 128

// idMiddleware reads header, keeps it when it is a well-formed ID and
// generates a UUID v4 otherwise. The ID is echoed on the response and
// handed to store, which places it on the request context.
func idMiddleware(header string, store func(ctx context.Context, id string) context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(header)
		if !validID(id) {
			id = uuid.NewString()
		}

		c.Header(header, id)
		c.Request = c.Request.WithContext(store(c.Request.Context(), id))

		c.Next()
	}
}

// validID accepts 1 to maxIDLength characters from [A-Za-z0-9._:-].
// Inbound IDs are forwarded to ShapeShift and written to logs verbatim,
// so anything else is replaced rather than escaped.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for i := 0; i < len(id); i++ {
		switch b := id[i]; {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		case b == '-', b == '_', b == '.', b == ':':
		default:
			return false
		}
	}

	return true
}
