package goAuthClient

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MrEthical07/goAuthClient/credstore"
)

// Builder defines a public type used by goAuthClient APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config     Config
	store      credstore.Store
	httpClient *http.Client
	logger     zerolog.Logger
	onSignout  func()

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
		logger: zerolog.Nop(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithStore injects the credential store. When absent, Build creates a file
// store under the configured profile directory.
func (b *Builder) WithStore(s credstore.Store) *Builder {
	b.store = s
	return b
}

// WithHTTPClient injects the HTTP client, e.g. one with a custom transport
// or test interceptor. When absent, Build creates one bounded by the
// configured timeout.
func (b *Builder) WithHTTPClient(hc *http.Client) *Builder {
	b.httpClient = hc
	return b
}

// WithLogger describes the withlogger operation and its observable behavior.
func (b *Builder) WithLogger(l zerolog.Logger) *Builder {
	b.logger = l
	return b
}

// WithSignoutHandler registers the hook invoked after a forced local
// sign-out (any 401 on an authenticated request). Embedding UIs use it to
// navigate to their login surface. The hook runs on the calling goroutine
// and must not block.
func (b *Builder) WithSignoutHandler(fn func()) *Builder {
	b.onSignout = fn
	return b
}

// Build validates the configuration and assembles the Client and its
// Session. Construction is allocation-only: no network traffic happens
// until a Session or Client method is called.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
func (b *Builder) Build() (*Session, error) {
	if b == nil {
		return nil, errors.New("nil builder")
	}
	if b.built {
		return nil, errors.New("builder already used")
	}
	if err := b.config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	store := b.store
	if store == nil {
		dir, err := b.config.Storage.profileDir()
		if err != nil {
			return nil, err
		}
		fs, err := credstore.NewFile(dir)
		if err != nil {
			return nil, err
		}
		store = fs
	}

	hc := b.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: b.config.HTTP.Timeout}
	}

	client := &Client{
		config:   b.config,
		http:     hc,
		store:    store,
		log:      b.logger,
		metrics:  NewMetrics(b.config.Metrics),
		validate: validator.New(),
		device: DeviceInfo{
			ClientID: uuid.NewString(),
			Platform: runtime.GOOS + "/" + runtime.GOARCH,
		},
		onSignout: b.onSignout,
	}

	b.built = true
	return newSession(client), nil
}
