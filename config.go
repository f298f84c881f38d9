package goAuthClient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config defines a public type used by goAuthClient APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Endpoint EndpointConfig
	HTTP     HTTPConfig
	Storage  StorageConfig
	Metrics  MetricsConfig
}

/*
====================================
ENDPOINT CONFIG
====================================
*/

// EndpointConfig defines a public type used by goAuthClient APIs.
//
// EndpointConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type EndpointConfig struct {
	// BaseURL is the auth service origin including the API base path,
	// e.g. "https://api.example.com/api".
	BaseURL string `env:"GOAUTHCLIENT_BASE_URL, default=http://localhost:8080/api"`
}

/*
====================================
HTTP CONFIG
====================================
*/

// HTTPConfig defines a public type used by goAuthClient APIs.
//
// HTTPConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HTTPConfig struct {
	// Timeout bounds every request end to end. A timeout surfaces as
	// ErrNetwork like any other transport failure.
	Timeout   time.Duration `env:"GOAUTHCLIENT_TIMEOUT, default=10s"`
	UserAgent string        `env:"GOAUTHCLIENT_USER_AGENT, default=goAuthClient/1.0"`
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageConfig defines a public type used by goAuthClient APIs.
//
// StorageConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StorageConfig struct {
	// ProfileDir is where the default file store keeps its credential
	// profile. Empty means <user config dir>/goauthclient. Ignored when a
	// Store is injected through the Builder.
	ProfileDir string `env:"GOAUTHCLIENT_PROFILE_DIR"`
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by goAuthClient APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool `env:"GOAUTHCLIENT_METRICS_ENABLED, default=true"`
}

// DefaultConfig returns the configuration used when the Builder receives no
// overrides.
func DefaultConfig() Config {
	return Config{
		Endpoint: EndpointConfig{
			BaseURL: "http://localhost:8080/api",
		},
		HTTP: HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "goAuthClient/1.0",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// ConfigFromEnv loads configuration from GOAUTHCLIENT_* environment
// variables, falling back to the documented defaults.
func ConfigFromEnv(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config from env: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Endpoint.BaseURL == "" {
		return errors.New("endpoint base URL is required")
	}
	u, err := url.Parse(c.Endpoint.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("endpoint base URL %q is not an absolute URL", c.Endpoint.BaseURL)
	}
	if c.HTTP.Timeout <= 0 {
		return errors.New("HTTP timeout must be positive")
	}
	return nil
}

// profileDir resolves the directory of the default file store.
func (c StorageConfig) profileDir() (string, error) {
	if c.ProfileDir != "" {
		return c.ProfileDir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "goauthclient"), nil
}
