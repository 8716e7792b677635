package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/config"
)

func serverConfig(host string, port int) *config.ServerConfig {
	return &config.ServerConfig{
		Host:            host,
		Port:            port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    20 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		MaxRequestSize:  config.DefaultMaxRequestSize,
	}
}

func TestNew(t *testing.T) {
	cfg := serverConfig("127.0.0.1", 8080)
	srv := New(cfg, discardLogger())

	assert.Same(t, cfg, srv.Config())
	assert.NotNil(t, srv.Engine())
	assert.Equal(t, cfg.WriteTimeout, srv.httpServer.WriteTimeout)
	assert.Equal(t, cfg.ReadTimeout, srv.httpServer.ReadHeaderTimeout)
}

func TestServer_AddrBeforeStart(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"localhost", 8080, "localhost:8080"},
		{"0.0.0.0", 3000, "0.0.0.0:3000"},
		{"::1", 9000, "[::1]:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, New(serverConfig(tt.host, tt.port), discardLogger()).Addr())
		})
	}
}

func TestServer_StartServeShutdown(t *testing.T) {
	srv := New(serverConfig("127.0.0.1", 0), discardLogger())
	srv.Engine().GET("/-/live", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	errCh := srv.Start()

	addr := srv.Addr()
	require.False(t, strings.HasSuffix(addr, ":0"), "bound port is reported")

	resp, err := http.Get("http://" + addr + "/-/live")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err, open := <-errCh:
		assert.NoError(t, err)
		assert.False(t, open, "channel closes after a clean shutdown")
	case <-time.After(2 * time.Second):
		t.Fatal("serve loop did not stop")
	}
}

func TestServer_StartReportsBindFailure(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	port := taken.Addr().(*net.TCPAddr).Port
	srv := New(serverConfig("127.0.0.1", port), discardLogger())

	err = <-srv.Start()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on")
}

func TestLimitBody(t *testing.T) {
	cfg := serverConfig("127.0.0.1", 0)
	cfg.MaxRequestSize = 64

	srv := New(cfg, discardLogger())
	srv.Engine().POST("/api/v1/shift", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}

		c.String(http.StatusOK, "%d", len(body))
	})

	tests := []struct {
		name string
		size int
		want int
	}{
		{"under limit", 32, http.StatusOK},
		{"at limit", 64, http.StatusOK},
		{"over limit", 65, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/shift", strings.NewReader(strings.Repeat("a", tt.size)))
			srv.Engine().ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
