package config

import (
	"testing"
	"time"
)

func TestGetServerAddr(t *testing.T) {
	tests := []struct {
		name     string
		port     int
		expected string
	}{
		{"default port", 8080, ":8080"},
		{"custom port", 3000, ":3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Server: ServerConfig{Port: tt.port}}
			if got := cfg.GetServerAddr(); got != tt.expected {
				t.Errorf("GetServerAddr() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBackendTimeout(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected time.Duration
	}{
		{"configured", 30, 30 * time.Second},
		{"zero falls back", 0, 60 * time.Second},
		{"negative falls back", -5, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Backend: BackendConfig{TimeoutSeconds: tt.seconds}}
			if got := cfg.BackendTimeout(); got != tt.expected {
				t.Errorf("BackendTimeout() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"debug text", "debug", "text"},
		{"info json", "info", "json"},
		{"unknown level defaults", "verbose", "text"},
		{"warn variant", "warning", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level, Format: tt.format}}
			if logger := cfg.NewLogger(); logger == nil {
				t.Fatal("NewLogger() returned nil")
			}
		})
	}
}
