package goAuthClient

import (
	"context"
	"testing"
	"time"

	"github.com/MrEthical07/goAuthClient/credstore"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg, err := ConfigFromEnv(context.Background())
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Endpoint.BaseURL != "http://localhost:8080/api" {
		t.Fatalf("base URL default = %q", cfg.Endpoint.BaseURL)
	}
	if cfg.HTTP.Timeout != 10*time.Second {
		t.Fatalf("timeout default = %v", cfg.HTTP.Timeout)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("metrics default to enabled")
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("GOAUTHCLIENT_BASE_URL", "https://auth.example.com/api")
	t.Setenv("GOAUTHCLIENT_TIMEOUT", "3s")
	t.Setenv("GOAUTHCLIENT_PROFILE_DIR", "/tmp/profile")

	cfg, err := ConfigFromEnv(context.Background())
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Endpoint.BaseURL != "https://auth.example.com/api" {
		t.Fatalf("base URL = %q", cfg.Endpoint.BaseURL)
	}
	if cfg.HTTP.Timeout != 3*time.Second {
		t.Fatalf("timeout = %v", cfg.HTTP.Timeout)
	}
	if cfg.Storage.ProfileDir != "/tmp/profile" {
		t.Fatalf("profile dir = %q", cfg.Storage.ProfileDir)
	}
}

func TestBuildRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base URL", func(c *Config) { c.Endpoint.BaseURL = "" }},
		{"relative base URL", func(c *Config) { c.Endpoint.BaseURL = "/api" }},
		{"zero timeout", func(c *Config) { c.HTTP.Timeout = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if _, err := New().WithConfig(cfg).WithStore(credstore.NewMemory()).Build(); err == nil {
				t.Fatal("expected build error")
			}
		})
	}
}

func TestBuilderSingleUse(t *testing.T) {
	b := New().WithStore(credstore.NewMemory())
	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("second Build must fail")
	}
}
