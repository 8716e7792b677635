package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/logging"
)

// idCapture records what a handler observed about the request IDs.
type idCapture struct {
	requestID     string
	correlationID string
	ctxRequest    string
	ctxCorrelate  string
}

func serveWithIDs(t *testing.T, headers map[string]string) (*httptest.ResponseRecorder, idCapture) {
	t.Helper()

	var got idCapture

	router := gin.New()
	router.Use(RequestID(), CorrelationID())
	router.GET("/rates/:pair", func(c *gin.Context) {
		got.requestID = GetRequestID(c)
		got.correlationID = GetCorrelationID(c)
		got.ctxRequest = RequestIDFromContext(c.Request.Context())
		got.ctxCorrelate = CorrelationIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/rates/btc_eth", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w, got
}

func TestIDMiddleware_GeneratesUUIDs(t *testing.T) {
	w, got := serveWithIDs(t, nil)

	require.Equal(t, http.StatusOK, w.Code)

	_, err := uuid.Parse(got.requestID)
	require.NoError(t, err, "request ID should be a UUID")
	assert.Equal(t, uuid.Version(4), uuid.MustParse(got.requestID).Version())

	_, err = uuid.Parse(got.correlationID)
	require.NoError(t, err, "correlation ID should be a UUID")

	assert.NotEqual(t, got.requestID, got.correlationID)
	assert.Equal(t, got.requestID, w.Header().Get(HeaderRequestID))
	assert.Equal(t, got.correlationID, w.Header().Get(HeaderCorrelationID))
}

func TestIDMiddleware_KeepsWellFormedInboundIDs(t *testing.T) {
	w, got := serveWithIDs(t, map[string]string{
		HeaderRequestID:     "req-123",
		HeaderCorrelationID: "flow:quote.shift_42",
	})

	assert.Equal(t, "req-123", got.requestID)
	assert.Equal(t, "flow:quote.shift_42", got.correlationID)
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "flow:quote.shift_42", w.Header().Get(HeaderCorrelationID))
}

func TestIDMiddleware_ReplacesMalformedInboundIDs(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"spaces", "req 123"},
		{"quote", `req"123`},
		{"newline escape", "req\\n123"},
		{"slash", "a/b"},
		{"too long", strings.Repeat("a", maxIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, got := serveWithIDs(t, map[string]string{HeaderRequestID: tt.id})

			assert.NotEqual(t, tt.id, got.requestID)
			_, err := uuid.Parse(got.requestID)
			assert.NoError(t, err)
			assert.Equal(t, got.requestID, w.Header().Get(HeaderRequestID))
		})
	}
}

func TestIDMiddleware_StoresIDsOnRequestContext(t *testing.T) {
	_, got := serveWithIDs(t, map[string]string{
		HeaderRequestID:     "req-1",
		HeaderCorrelationID: "corr-1",
	})

	assert.Equal(t, "req-1", got.ctxRequest)
	assert.Equal(t, "corr-1", got.ctxCorrelate)
}

func TestIDMiddleware_EnrichesContextLogger(t *testing.T) {
	var buf bytes.Buffer

	router := gin.New()
	router.Use(func(c *gin.Context) {
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		c.Next()
	})
	router.Use(RequestID(), CorrelationID())
	router.GET("/coins", func(c *gin.Context) {
		logging.FromContext(c.Request.Context()).Info("listing coins")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/coins", http.NoBody)
	req.Header.Set(HeaderRequestID, "req-9")
	req.Header.Set(HeaderCorrelationID, "corr-9")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-9", entry["request_id"])
	assert.Equal(t, "corr-9", entry["correlation_id"])
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"", false},
		{"a", true},
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"svc.gateway:flow_1", true},
		{strings.Repeat("x", maxIDLength), true},
		{strings.Repeat("x", maxIDLength+1), false},
		{"tab\tid", false},
		{"ünïcode", false},
		{"<script>", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, validID(tt.id))
		})
	}
}

func TestIDsFromContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))
	assert.Empty(t, CorrelationIDFromContext(ctx))

	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, "corr-1", CorrelationIDFromContext(ctx))

	//nolint:staticcheck // nil context is handled explicitly
	assert.Empty(t, RequestIDFromContext(nil))
}
