package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPPort != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.HTTPPort)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.H2C {
		t.Error("expected h2c disabled by default")
	}
	if cfg.Health.CheckInterval != 30*time.Second {
		t.Errorf("expected default health check interval 30s, got %s", cfg.Health.CheckInterval)
	}
	if cfg.Timeouts.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected default shutdown timeout 30s, got %s", cfg.Timeouts.ShutdownTimeout)
	}
	if addr := cfg.GetHTTPAddr(); addr != ":5000" {
		t.Errorf("expected addr :5000, got %q", addr)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HELLOSVC_HTTP_PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HELLOSVC_H2C", "true")
	t.Setenv("HEALTH_CHECK_INTERVAL", "10s")
	t.Setenv("TIMEOUT_SHUTDOWN", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPPort != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.HTTPPort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
	if !cfg.H2C {
		t.Error("expected h2c enabled")
	}
	if cfg.Health.CheckInterval != 10*time.Second {
		t.Errorf("expected health check interval 10s, got %s", cfg.Health.CheckInterval)
	}
	if cfg.Timeouts.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected shutdown timeout 5s, got %s", cfg.Timeouts.ShutdownTimeout)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("HELLOSVC_HTTP_PORT", "70000")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestLoad_MalformedDuration(t *testing.T) {
	t.Setenv("HEALTH_CHECK_INTERVAL", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed duration")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		HTTPPort: 5000,
		LogLevel: "info",
		Health:   HealthConfig{CheckInterval: 30 * time.Second},
		Timeouts: TimeoutConfig{ShutdownTimeout: 30 * time.Second},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.HTTPPort = 0 },
			wantErr: "invalid HTTP port",
		},
		{
			name:    "port too large",
			mutate:  func(c *Config) { c.HTTPPort = 65536 },
			wantErr: "invalid HTTP port",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "zero health interval",
			mutate:  func(c *Config) { c.Health.CheckInterval = 0 },
			wantErr: "health check interval",
		},
		{
			name:    "negative shutdown timeout",
			mutate:  func(c *Config) { c.Timeouts.ShutdownTimeout = -time.Second },
			wantErr: "shutdown timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %q", tt.wantErr, err)
			}
		})
	}
}
