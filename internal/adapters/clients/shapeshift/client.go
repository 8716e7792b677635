package shapeshift

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/shapeshift-gateway/internal/adapters/clients"
	"github.com/jsamuelsen/shapeshift-gateway/internal/domain"
	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/logging"
)

const (
	// ServiceName identifies ShapeShift in logs, traces and health checks.
	ServiceName = "shapeshift"

	// DefaultBaseURL is the public ShapeShift API.
	DefaultBaseURL = "https://shapeshift.io"

	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 4 << 20

	outcomeSuccess = "success"
)

// Config contains configuration for the ShapeShift client.
type Config struct {
	// Client is the HTTP transport. Its BaseURL should point at the ShapeShift API.
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger

	// Registerer receives the response outcome counter.
	// Defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
}

// Client implements ports.ExchangeClient against the ShapeShift HTTP API.
// It holds only immutable configuration and is safe for concurrent use.
type Client struct {
	http      *clients.Client
	logger    *slog.Logger
	responses *prometheus.CounterVec
}

// New creates a ShapeShift client.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func New(cfg Config) (*Client, error) {
	if cfg.Client == nil {
		panic("shapeshift.Client: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	reg := cfg.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	responses, err := registerResponses(reg)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:      cfg.Client,
		logger:    logger.With(slog.String("component", "shapeshift.Client")),
		responses: responses,
	}, nil
}

// registerResponses registers the outcome counter, reusing an identical
// collector that is already registered.
func registerResponses(reg prometheus.Registerer) (*prometheus.CounterVec, error) {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shapeshift_responses_total",
			Help: "ShapeShift API calls by endpoint and classified outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	err := reg.Register(counter)
	if err == nil {
		return counter, nil
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing, nil
		}
	}

	return nil, fmt.Errorf("registering response counter: %w", err)
}

// call performs one round-trip to ep and returns the classified success payload.
// form is sent as the body of POST endpoints; segments are appended to the path.
func (c *Client) call(ctx context.Context, ep Endpoint, form url.Values, segments ...string) (Payload, error) {
	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("endpoint", ep.Name),
		slog.String("method", ep.Method))

	path := ep.URLPath(segments...)

	var (
		resp *http.Response
		err  error
	)
	if ep.Method == http.MethodPost {
		resp, err = c.http.PostForm(ctx, path, form)
	} else {
		resp, err = c.http.Get(ctx, path)
	}

	if err != nil {
		return Payload{}, c.fail(ctx, ep, domain.WrapError(domain.KindRequestFailed, ep.Name, "request failed", err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Payload{}, c.fail(ctx, ep, domain.WrapError(domain.KindRequestFailed, ep.Name,
			"reading response body failed", err))
	}

	c.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("endpoint", ep.Name),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)))

	payload, err := Decode(body)
	if err != nil {
		return Payload{}, c.fail(ctx, ep, domain.WrapError(domain.KindMalformedResponse, ep.Name,
			fmt.Sprintf("undecodable response (HTTP %d)", resp.StatusCode), err))
	}

	outcome := Classify(payload, ep.ErrorTolerant)
	if !outcome.Success() {
		return Payload{}, c.fail(ctx, ep, outcome.Err(ep.Name))
	}

	c.responses.WithLabelValues(ep.Name, outcomeSuccess).Inc()

	return outcome.Payload(), nil
}

// fail records and logs a failed call, returning err unchanged.
func (c *Client) fail(ctx context.Context, ep Endpoint, err error) error {
	kind := domain.KindOf(err)
	c.responses.WithLabelValues(ep.Name, kind.String()).Inc()

	c.logger.WarnContext(ctx, "shapeshift call failed",
		slog.String("endpoint", ep.Name),
		slog.String("kind", kind.String()),
		slog.Any("error", err),
	)

	return err
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *Client) Name() string {
	return ServiceName
}

// Check probes the coin list, the cheapest public endpoint.
// Implements ports.HealthChecker.
func (c *Client) Check(ctx context.Context) error {
	_, err := c.call(ctx, EndpointSupportedCoins, nil)
	return err
}
