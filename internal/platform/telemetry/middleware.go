package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/shapeshift-gateway/telemetry"

	// HeaderTraceID carries the request's trace ID back to the caller.
	HeaderTraceID = "X-Trace-ID"

	unmatchedRoute = "unmatched"
)

// Metrics are the gateway's HTTP server instruments.
type Metrics struct {
	duration metric.Float64Histogram
	requests metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

// NewMetrics registers the server instruments on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(instrumentationName)

	var (
		m   Metrics
		err error
	)

	if m.duration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Gateway request duration"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if m.requests, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Gateway requests served"),
	); err != nil {
		return nil, err
	}

	if m.inFlight, err = meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Gateway requests in flight"),
	); err != nil {
		return nil, err
	}

	return &m, nil
}

// Middleware records server metrics and ties the request to its trace:
// the trace ID is echoed in X-Trace-ID and added to the context logger.
// Install it after TracingMiddleware so the request span exists.
func Middleware() gin.HandlerFunc {
	metrics, err := NewMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.HasTraceID() {
			traceID := sc.TraceID().String()
			c.Header(HeaderTraceID, traceID)
			c.Request = c.Request.WithContext(logging.WithTraceID(ctx, traceID))
		}

		if metrics == nil {
			c.Next()
			return
		}

		route := attribute.String("http.route", routeOf(c))
		method := attribute.String("http.method", c.Request.Method)
		inFlight := metric.WithAttributes(method, route)

		metrics.inFlight.Add(ctx, 1, inFlight)
		defer metrics.inFlight.Add(ctx, -1, inFlight)

		start := time.Now()
		c.Next()

		served := metric.WithAttributes(method, route, attribute.Int("http.status_code", c.Writer.Status()))
		metrics.duration.Record(ctx, time.Since(start).Seconds(), served)
		metrics.requests.Add(ctx, 1, served)
	}
}

// routeOf returns the route template, never the raw path, so deposit
// addresses and API keys stay out of metric labels.
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}

	return unmatchedRoute
}

// TracingMiddleware returns the otelgin tracing middleware. Spans are named
// after the route template for the same reason.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}
