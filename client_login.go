package goAuthClient

import (
	"context"
	"fmt"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginRequest struct {
	Token      string     `json:"token"`
	DeviceInfo DeviceInfo `json:"deviceInfo"`
}

type authResponse struct {
	Token   string `json:"token"`
	User    *User  `json:"user"`
	Message string `json:"message,omitempty"`
}

// Login authenticates with email and password. On success, the returned
// token is persisted in the credential store BEFORE Login returns, so a
// crash between login and the next call never loses the session.
//
// Login may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if c == nil {
		return nil, ErrClientNotReady
	}
	if email == "" || password == "" {
		c.metricInc(MetricLoginFailure)
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp, false); err != nil {
		c.metricInc(MetricLoginFailure)
		return nil, err
	}

	return c.adoptSession(ctx, resp, MetricLoginSuccess, MetricLoginFailure)
}

// LoginWithGoogle exchanges a Google identity token for a session on the
// alternate provider path. The device info identifies this installation to
// the backend's device tracking.
//
// LoginWithGoogle may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) LoginWithGoogle(ctx context.Context, idToken string) (*LoginResult, error) {
	if c == nil {
		return nil, ErrClientNotReady
	}
	if idToken == "" {
		c.metricInc(MetricLoginFailure)
		return nil, fmt.Errorf("%w: identity token is required", ErrValidation)
	}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/google", googleLoginRequest{Token: idToken, DeviceInfo: c.device}, &resp, false); err != nil {
		c.metricInc(MetricLoginFailure)
		return nil, err
	}

	return c.adoptSession(ctx, resp, MetricLoginSuccess, MetricLoginFailure)
}

// adoptSession validates a token-bearing response and persists the token.
// Shared by login, register, and the federated path: the persistence
// contract is identical for all three.
func (c *Client) adoptSession(ctx context.Context, resp authResponse, okMetric, failMetric MetricID) (*LoginResult, error) {
	if resp.Token == "" || resp.User == nil {
		c.metricInc(failMetric)
		return nil, fmt.Errorf("%w: response missing token or user", ErrBadResponse)
	}

	if err := c.store.SaveToken(ctx, resp.Token); err != nil {
		c.metricInc(failMetric)
		return nil, fmt.Errorf("persist token: %w", err)
	}

	c.metricInc(okMetric)
	c.log.Info().Str("user_id", resp.User.ID).Str("role", string(resp.User.Role)).Msg("session established")
	return &LoginResult{
		Success: true,
		User:    resp.User,
		Token:   resp.Token,
		Message: resp.Message,
	}, nil
}
