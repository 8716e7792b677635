package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/shapeshift-gateway/internal/mocks"
	"github.com/jsamuelsen/shapeshift-gateway/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// healthRouter mounts the /-/ routes over a registry returning result.
func healthRouter(t *testing.T, result *ports.HealthResult, gatherer prometheus.Gatherer) *gin.Engine {
	t.Helper()

	registry := mocks.NewMockHealthRegistry(t)
	if result != nil {
		registry.EXPECT().CheckAll(mock.Anything).Return(result)
	}

	router := gin.New()
	NewHealthHandler(registry, NewBuildInfo("1.2.3", "def456", "2026-01-01T00:00:00Z"), gatherer).
		RegisterRoutes(router.Group("/-"))

	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))

	return w
}

func TestLiveness(t *testing.T) {
	w := get(healthRouter(t, nil, nil), "/-/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name   string
		result *ports.HealthResult
		code   int
		body   string
	}{
		{
			name: "shapeshift reachable",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{"shapeshift": {Status: ports.HealthStatusHealthy}},
			},
			code: http.StatusOK,
			body: `"shapeshift":{"status":"healthy"`,
		},
		{
			name: "shapeshift unreachable",
			result: &ports.HealthResult{
				Status: ports.HealthStatusUnhealthy,
				Checks: map[string]*ports.CheckResult{"shapeshift": {
					Status:  ports.HealthStatusUnhealthy,
					Message: "getcoins: request failed: connection refused",
				}},
			},
			code: http.StatusServiceUnavailable,
			body: "connection refused",
		},
		{
			name:   "nothing registered",
			result: &ports.HealthResult{Status: ports.HealthStatusHealthy, Checks: map[string]*ports.CheckResult{}},
			code:   http.StatusOK,
			body:   `{"status":"healthy"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(healthRouter(t, tt.result, nil), "/-/ready")

			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		})
	}
}

func TestBuild(t *testing.T) {
	w := get(healthRouter(t, nil, nil), "/-/build")

	require.Equal(t, http.StatusOK, w.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, BuildInfo{
		Version:   "1.2.3",
		Commit:    "def456",
		BuildTime: "2026-01-01T00:00:00Z",
		GoVersion: runtime.Version(),
	}, info)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shapeshift_responses_total",
		Help: "ShapeShift responses by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})
	reg.MustRegister(outcomes)
	outcomes.WithLabelValues("rate", "success").Inc()

	w := get(healthRouter(t, nil, reg), "/-/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), `shapeshift_responses_total{endpoint="rate",outcome="success"} 1`)
}

func TestRegisterRoutes(t *testing.T) {
	router := healthRouter(t, nil, prometheus.NewRegistry())

	got := map[string]bool{}
	for _, r := range router.Routes() {
		got[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{"GET /-/live", "GET /-/ready", "GET /-/build", "GET /-/metrics"} {
		assert.True(t, got[want], "missing route %s", want)
	}
}
