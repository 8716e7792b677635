package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/shapeshift-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/config"
	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/shapeshift-gateway/internal/adapters/clients"

	// defaultTimeout applies when Config.Timeout is unset.
	defaultTimeout = config.DefaultClientTimeout

	contentTypeForm = "application/x-www-form-urlencoded"
	contentTypeJSON = "application/json"
)

// Config describes one upstream.
type Config struct {
	BaseURL     string // scheme and host, e.g. https://shapeshift.io
	ServiceName string // peer.service in spans and metrics

	// Timeout bounds a whole attempt, body read included.
	Timeout time.Duration

	// Transport sizes the connection pool; zero fields take config defaults.
	Transport config.TransportConfig

	// HTTPClient, when set, replaces the client built from Timeout and Transport.
	HTTPClient *http.Client

	Logger *slog.Logger
}

// Client sends single-attempt requests to one upstream with client spans,
// request metrics, ID propagation and debug logging. Transport failures
// wrap ErrTransport; any HTTP status, including 5xx, is returned as a
// response for the caller to classify.
type Client struct {
	http        *http.Client
	baseURL     string
	serviceName string
	logger      *slog.Logger

	tracer trace.Tracer

	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
}

// New validates cfg and builds the client and its instruments.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "clients.Client"))

	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of HTTP client requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	requestTotal, err := meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of HTTP client requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = newHTTPClient(cfg)
	}

	return &Client{
		http:            httpClient,
		baseURL:         strings.TrimSuffix(cfg.BaseURL, "/"),
		serviceName:     cfg.ServiceName,
		logger:          logger,
		tracer:          otel.Tracer(instrumentationName),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}, nil
}

func newHTTPClient(cfg *Config) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	pool := cfg.Transport
	if pool.MaxIdleConns <= 0 {
		pool.MaxIdleConns = config.DefaultTransportMaxIdleConns
	}
	if pool.MaxIdleConnsPerHost <= 0 {
		pool.MaxIdleConnsPerHost = config.DefaultTransportMaxIdleConnsPerHost
	}
	if pool.IdleConnTimeout <= 0 {
		pool.IdleConnTimeout = config.DefaultTransportIdleConnTimeout
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        pool.MaxIdleConns,
			MaxIdleConnsPerHost: pool.MaxIdleConnsPerHost,
			IdleConnTimeout:     pool.IdleConnTimeout,
		},
	}
}

// Do sends req once. A non-nil error always wraps ErrTransport; an HTTP
// error status is not an error. Paths are never logged or traced since
// ShapeShift paths can embed API keys.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	startTime := time.Now()
	logger := logging.FromContextOr(ctx, c.logger).With(
		slog.String("upstream", c.serviceName),
		slog.String("method", req.Method),
		slog.String("host", req.URL.Host),
	)

	c.injectHeaders(ctx, req)

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("server.address", req.URL.Host),
			attribute.String("peer.service", c.serviceName),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req.WithContext(ctx))
	duration := time.Since(startTime)

	if err != nil {
		err = scrubURL(err)

		span.SetStatus(codes.Error, err.Error())
		c.recordMetrics(ctx, req.Method, 0, duration, failureResult(err))
		logger.WarnContext(ctx, "request failed",
			slog.Duration("duration", duration),
			slog.Any("error", err),
		)

		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	c.recordMetrics(ctx, req.Method, resp.StatusCode, duration, statusClass(resp.StatusCode))

	logger.DebugContext(ctx, "request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration),
	)

	return resp, nil
}

// Get sends a GET for path, accepting JSON.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(path), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", contentTypeJSON)

	return c.Do(ctx, req)
}

// PostForm sends form as an urlencoded POST body to path.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(path), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", contentTypeForm)
	req.Header.Set("Accept", contentTypeJSON)

	return c.Do(ctx, req)
}

// ServiceName returns the upstream service name.
func (c *Client) ServiceName() string {
	return c.serviceName
}

// injectHeaders forwards the inbound request and correlation IDs.
func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if requestID := middleware.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(middleware.HeaderRequestID, requestID)
	}

	if correlationID := middleware.CorrelationIDFromContext(ctx); correlationID != "" {
		req.Header.Set(middleware.HeaderCorrelationID, correlationID)
	}
}

func (c *Client) buildURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}

func (c *Client) recordMetrics(ctx context.Context, method string, statusCode int, duration time.Duration, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("peer.service", c.serviceName),
		attribute.String("result", result),
	}

	if statusCode > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", statusCode))
	}

	c.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
	c.requestTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// scrubURL drops the path and query from a *url.Error so the returned error
// and its log line never carry path-embedded secrets. The cause is kept.
func scrubURL(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}

	target := "<upstream>"
	if u, parseErr := url.Parse(uerr.URL); parseErr == nil {
		target = u.Scheme + "://" + u.Host
	}

	return &url.Error{Op: uerr.Op, URL: target, Err: uerr.Err}
}

// statusClass labels a response as 2xx, 4xx and so on.
func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

// failureResult labels a transport failure for metrics.
func failureResult(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "context_canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}
