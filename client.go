package goAuthClient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/MrEthical07/goAuthClient/credstore"
)

// maxResponseBytes bounds how much of a response body is read. Auth
// responses are small; anything larger is misbehavior.
const maxResponseBytes = 1 << 20

// Client performs the network operations of the authentication core:
// login, register, logout, refresh, password reset, and current-user
// lookup. Every public operation is context-bound, bounded by the
// configured timeout, and converts all transport and protocol failures
// into the package error taxonomy; nothing panics past this boundary.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Client struct {
	config    Config
	http      *http.Client
	store     credstore.Store
	log       zerolog.Logger
	metrics   *Metrics
	validate  *validator.Validate
	device    DeviceInfo
	onSignout func()
}

// Store returns the credential store the client persists into.
func (c *Client) Store() credstore.Store {
	if c == nil {
		return nil
	}
	return c.store
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	if c == nil || c.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return c.metrics.Snapshot()
}

func (c *Client) metricInc(id MetricID) {
	if c == nil || c.metrics == nil {
		return
	}
	c.metrics.Inc(id)
}

// RememberIdentifier persists email for login-form pre-fill. Its lifecycle
// is independent of the session token.
func (c *Client) RememberIdentifier(ctx context.Context, email string) error {
	if c == nil {
		return ErrClientNotReady
	}
	return c.store.RememberIdentifier(ctx, email)
}

// RememberedIdentifier returns the remembered email, or "" when none is set.
func (c *Client) RememberedIdentifier(ctx context.Context) string {
	if c == nil {
		return ""
	}
	email, err := c.store.LoadIdentifier(ctx)
	if err != nil {
		return ""
	}
	return email
}

// ForgetIdentifier removes the remembered email.
func (c *Client) ForgetIdentifier(ctx context.Context) error {
	if c == nil {
		return ErrClientNotReady
	}
	return c.store.ForgetIdentifier(ctx)
}

type serverMessage struct {
	Message string `json:"message"`
}

// do sends one JSON request and decodes the response into out (when out is
// non-nil). authed attaches the stored bearer token; a missing token fails
// with ErrNoSession before any network traffic. A 401 on an authed request
// forces the local sign-out path: the token is discarded and the configured
// signout handler runs.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	if c == nil {
		return ErrClientNotReady
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	url := strings.TrimRight(c.config.Endpoint.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.HTTP.UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		tok, err := c.store.LoadToken(ctx)
		if errors.Is(err, credstore.ErrTokenNotFound) {
			return ErrNoSession
		}
		if err != nil {
			return fmt.Errorf("load token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.metricInc(MetricNetworkError)
		c.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.metricInc(MetricNetworkError)
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("auth request")

	if resp.StatusCode >= 400 {
		return c.statusError(ctx, resp.StatusCode, data, authed)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: %v", ErrBadResponse, err)
		}
	}
	return nil
}

// statusError maps an HTTP failure status onto the error taxonomy,
// preserving the server-provided message when the body carries one.
func (c *Client) statusError(ctx context.Context, status int, body []byte, authed bool) error {
	var msg serverMessage
	_ = json.Unmarshal(body, &msg)

	var category error
	switch {
	case status == http.StatusUnauthorized && authed:
		category = ErrUnauthorized
		c.forceSignout(ctx)
	case status == http.StatusUnauthorized:
		category = ErrInvalidCredentials
	case status == http.StatusForbidden:
		category = ErrForbidden
	case status == http.StatusBadRequest || status == http.StatusConflict || status == http.StatusUnprocessableEntity:
		category = ErrValidation
	default:
		// 404, 429, and 5xx are all the same to the caller: try again later.
		category = ErrUnavailable
	}

	return &APIError{Status: status, Message: msg.Message, category: category}
}

// forceSignout discards the local token after the server rejected it. The
// embedding UI's signout handler decides where to navigate.
func (c *Client) forceSignout(ctx context.Context) {
	c.metricInc(MetricForcedSignout)
	if err := c.store.ClearToken(ctx); err != nil {
		c.log.Warn().Err(err).Msg("failed to clear rejected token")
	}
	c.log.Warn().Msg("session rejected by server, signed out locally")
	if c.onSignout != nil {
		c.onSignout()
	}
}

// discardToken drops a stored token that failed a local decode or expiry
// check so later reads start from a clean anonymous state.
func (c *Client) discardToken(ctx context.Context, reason string) {
	c.metricInc(MetricTokenDiscarded)
	if err := c.store.ClearToken(ctx); err != nil {
		c.log.Warn().Err(err).Str("reason", reason).Msg("failed to discard token")
		return
	}
	c.log.Debug().Str("reason", reason).Msg("discarded stored token")
}

// validationMessages flattens validator errors into the human-readable
// form surfaced to the UI.
func validationMessages(err error) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return msgs
}

func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
