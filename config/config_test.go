package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("LOGIN_RATE_WINDOW", "30s")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.transportes.com, ,https://admin.transportes.com")
		t.Setenv("REDIS_ENABLED", "false")

		cfg := Load()

		if cfg.Server.Port != 9090 {
			t.Errorf("expected port 9090, got %d", cfg.Server.Port)
		}
		if cfg.Auth.LoginWindow != 30*time.Second {
			t.Errorf("expected 30s login window, got %s", cfg.Auth.LoginWindow)
		}
		if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://admin.transportes.com" {
			t.Errorf("unexpected origins %v", cfg.CORS.AllowedOrigins)
		}
		if cfg.Redis.Enabled {
			t.Error("expected redis to be disabled")
		}
	})

	t.Run("malformed values fall back to defaults", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "eighty")
		t.Setenv("BCRYPT_COST", "")
		t.Setenv("JWT_EXPIRY", "soon")

		cfg := Load()

		if cfg.Server.Port != 8080 {
			t.Errorf("expected default port, got %d", cfg.Server.Port)
		}
		if cfg.Auth.BcryptCost != 12 {
			t.Errorf("expected default bcrypt cost, got %d", cfg.Auth.BcryptCost)
		}
		if cfg.JWT.AccessTokenExpiry != 15*time.Minute {
			t.Errorf("expected default access expiry, got %s", cfg.JWT.AccessTokenExpiry)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{
			name:    "production needs its own secret",
			mutate:  func(c *Config) { c.Server.Environment = "production" },
			wantErr: "JWT_SECRET must be set in production",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "SERVER_PORT",
		},
		{
			name:    "missing database",
			mutate:  func(c *Config) { c.Database.URL = "" },
			wantErr: "DATABASE_URL is required",
		},
		{
			name:    "login limit must be positive",
			mutate:  func(c *Config) { c.Auth.LoginAttempts = 0 },
			wantErr: "LOGIN_RATE_LIMIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV", "development")
			t.Setenv("JWT_SECRET", defaultJWTSecret)
			t.Setenv("DATABASE_URL", "postgres://localhost/freight_manager")
			t.Setenv("SERVER_PORT", "8080")

			cfg := Load()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("test environments", func(t *testing.T) {
		cfg := &Config{Server: ServerConfig{Environment: "e2e"}}
		if !cfg.IsTest() {
			t.Error("expected e2e to count as a test environment")
		}
	})
}
