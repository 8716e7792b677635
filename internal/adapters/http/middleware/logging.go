package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/logging"
)

// probePrefix marks operational routes that are never access-logged.
const probePrefix = "/-/"

// Logging writes one access line per request when it completes, at a level
// chosen by the status: 5xx is an error, 4xx a warning. Probes under /-/
// and the exact skipPaths are not logged. The context logger is preferred
// so request and correlation IDs are included; logger is the fallback.
func Logging(logger *slog.Logger, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		if p := c.Request.URL.Path; skip[p] || strings.HasPrefix(p, probePrefix) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := logging.FromContextOr(ctx, logger)
		target := c.Request.URL.RequestURI()

		log.DebugContext(ctx, "request started",
			slog.String("method", c.Request.Method),
			slog.String("path", target),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		status := c.Writer.Status()
		log.Log(ctx, statusLevel(status), "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", target),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", elapsed),
			slog.Int64("latency_ms", elapsed.Milliseconds()),
			slog.Int("bytes", c.Writer.Size()),
		)
	}
}

func statusLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
