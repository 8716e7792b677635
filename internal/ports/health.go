package ports

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrDuplicateChecker is returned when a checker name is registered twice.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is a dependency the gateway cannot serve without.
// The ShapeShift client implements it by probing /getcoins.
type HealthChecker interface {
	// Name identifies the check in readiness output.
	Name() string

	// Check returns nil when the dependency is usable. It must honour ctx.
	Check(ctx context.Context) error
}

// HealthRegistry runs every registered check on demand.
type HealthRegistry interface {
	// Register adds a checker. Names must be unique.
	Register(checker HealthChecker) error

	// CheckAll runs all checks concurrently and aggregates the result.
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is the state of one check or of the whole gateway.
type HealthStatus string

// Health states.
const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is the aggregate of one CheckAll run. The gateway is
// unhealthy when any check is.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is the outcome of a single check.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// DefaultHealthRegistry is the in-process HealthRegistry. It is safe for
// concurrent use.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
	timeout  time.Duration
}

// HealthOption configures a DefaultHealthRegistry.
type HealthOption func(*DefaultHealthRegistry)

// WithCheckTimeout bounds each check. Zero leaves only the caller's deadline.
func WithCheckTimeout(d time.Duration) HealthOption {
	return func(r *DefaultHealthRegistry) { r.timeout = d }
}

// NewHealthRegistry returns an empty registry.
func NewHealthRegistry(opts ...HealthOption) *DefaultHealthRegistry {
	r := &DefaultHealthRegistry{checkers: map[string]HealthChecker{}}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register implements HealthRegistry.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	if _, exists := r.checkers[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
	}

	r.checkers[name] = checker

	return nil
}

// Names returns the registered check names in sorted order.
func (r *DefaultHealthRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// CheckAll implements HealthRegistry.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := make([]HealthChecker, 0, len(r.checkers))
	for _, c := range r.checkers {
		checkers = append(checkers, c)
	}
	r.mu.RUnlock()

	results := make([]*CheckResult, len(checkers))

	var g errgroup.Group
	for i, checker := range checkers {
		g.Go(func() error {
			results[i] = r.run(ctx, checker)
			return nil
		})
	}

	_ = g.Wait()

	agg := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	for i, checker := range checkers {
		agg.Checks[checker.Name()] = results[i]
		if results[i].Status != HealthStatusHealthy {
			agg.Status = HealthStatusUnhealthy
		}
	}

	return agg
}

func (r *DefaultHealthRegistry) run(ctx context.Context, checker HealthChecker) *CheckResult {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	err := checker.Check(ctx)
	res := &CheckResult{Status: HealthStatusHealthy, Duration: time.Since(start)}

	if err != nil {
		res.Status = HealthStatusUnhealthy
		res.Message = err.Error()
	}

	return res
}
