package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "shapeshift-gateway",
			Version:     "1.0.0",
			Environment: "local",
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxRequestSize:  1 << 20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: ClientConfig{
			Timeout: 10 * time.Second,
			Transport: TransportConfig{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		ShapeShift: ShapeShiftConfig{
			BaseURL: DefaultShapeShiftBaseURL,
			Name:    "shapeshift",
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_Accepts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"dev environment", func(c *Config) { c.App.Environment = "dev" }},
		{"qa environment", func(c *Config) { c.App.Environment = "qa" }},
		{"prod environment", func(c *Config) { c.App.Environment = "prod" }},
		{"test environment", func(c *Config) { c.App.Environment = "test" }},
		{"lowest port", func(c *Config) { c.Server.Port = 1 }},
		{"highest port", func(c *Config) { c.Server.Port = 65535 }},
		{"trace level", func(c *Config) { c.Log.Level = "trace" }},
		{"pretty format", func(c *Config) { c.Log.Format = "pretty" }},
		{"log file with path", func(c *Config) {
			c.Log.File = LogFileConfig{Enabled: true, Path: "/var/log/gateway.log", MaxSizeMB: 50}
		}},
		{"telemetry enabled", func(c *Config) {
			c.Telemetry = TelemetryConfig{Enabled: true, Endpoint: "http://otel:4317", ServiceName: "gw", SamplingRate: 0.5}
		}},
		{"plain http upstream", func(c *Config) { c.ShapeShift.BaseURL = "http://localhost:9000" }},
		{"api key set", func(c *Config) { c.ShapeShift.APIKey = "0a1b2c" }},
		{"no api key", func(c *Config) { c.ShapeShift.APIKey = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestConfig_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing app name", func(c *Config) { c.App.Name = "" }, "app.name is required"},
		{"missing version", func(c *Config) { c.App.Version = "" }, "app.version is required"},
		{"unknown environment", func(c *Config) { c.App.Environment = "staging" }, "app.environment must be one of"},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, "server.port is required"},
		{"port too high", func(c *Config) { c.Server.Port = 65536 }, "server.port must be at most 65535"},
		{"missing host", func(c *Config) { c.Server.Host = "" }, "server.host is required"},
		{"read timeout too short", func(c *Config) { c.Server.ReadTimeout = time.Millisecond }, "server.read_timeout must be at least 1s"},
		{"missing max request size", func(c *Config) { c.Server.MaxRequestSize = 0 }, "server.max_request_size is required"},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level must be one of"},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, "log.format must be one of"},
		{"log file without path", func(c *Config) {
			c.Log.File = LogFileConfig{Enabled: true}
		}, "log.file.path is required when"},
		{"log file too large", func(c *Config) {
			c.Log.File = LogFileConfig{Enabled: true, Path: "x.log", MaxSizeMB: 4096}
		}, "log.file.max_size must be at most 1024"},
		{"telemetry without endpoint", func(c *Config) {
			c.Telemetry = TelemetryConfig{Enabled: true, ServiceName: "gw"}
		}, "telemetry.endpoint is required when"},
		{"telemetry without service name", func(c *Config) {
			c.Telemetry = TelemetryConfig{Enabled: true, Endpoint: "http://otel:4317"}
		}, "telemetry.service_name is required when"},
		{"sampling above one", func(c *Config) { c.Telemetry.SamplingRate = 1.5 }, "telemetry.sampling_rate must be at most 1"},
		{"client timeout too short", func(c *Config) { c.Client.Timeout = time.Millisecond }, "client.timeout must be at least 100ms"},
		{"empty pool", func(c *Config) { c.Client.Transport.MaxIdleConns = 0 }, "client.transport.max_idle_conns is required"},
		{"short idle timeout", func(c *Config) {
			c.Client.Transport.IdleConnTimeout = time.Millisecond
		}, "client.transport.idle_conn_timeout must be at least 1s"},
		{"missing base url", func(c *Config) { c.ShapeShift.BaseURL = "" }, "shapeshift.base_url is required"},
		{"non http base url", func(c *Config) { c.ShapeShift.BaseURL = "ftp://shapeshift.io" }, "shapeshift.base_url must be a valid URL"},
		{"relative base url", func(c *Config) { c.ShapeShift.BaseURL = "shapeshift.io" }, "shapeshift.base_url must be a valid URL"},
		{"missing upstream name", func(c *Config) { c.ShapeShift.Name = "" }, "shapeshift.name is required"},
		{"client outlives write deadline", func(c *Config) {
			c.Client.Timeout = c.Server.WriteTimeout
		}, "client.timeout (30s) must be shorter than server.write_timeout (30s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfig_Validate_ReportsEveryProblem(t *testing.T) {
	cfg := &Config{
		App:    AppConfig{Environment: "invalid"},
		Server: ServerConfig{Port: -1},
	}

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "config validation failed")
	assert.Contains(t, msg, "app.name")
	assert.Contains(t, msg, "app.version")
	assert.Contains(t, msg, "app.environment")
	assert.Contains(t, msg, "shapeshift")
}

func TestKeyPath(t *testing.T) {
	tests := []struct {
		namespace string
		want      string
	}{
		{"Config.server.port", "server.port"},
		{"Config.shapeshift.base_url", "shapeshift.base_url"},
		{"Config.client.transport.max_idle_conns", "client.transport.max_idle_conns"},
		{"Config", "Config"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			assert.Equal(t, tt.want, keyPath(tt.namespace))
		})
	}
}
