package goAuthClient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MrEthical07/goAuthClient/token"
)

type refreshResponse struct {
	Token string `json:"token"`
}

type meResponse struct {
	User *User `json:"user"`
}

// Logout invalidates the session remotely on a best-effort basis and always
// clears the local token: the deferred clear runs whether or not the server
// was reachable, so local sign-out is guaranteed. Remote failures are
// logged, never surfaced.
//
// Logout may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) Logout(ctx context.Context) (err error) {
	if c == nil {
		return ErrClientNotReady
	}
	c.metricInc(MetricLogout)

	defer func() {
		if cerr := c.store.ClearToken(ctx); cerr != nil {
			err = fmt.Errorf("clear local token: %w", cerr)
		}
	}()

	if rerr := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, true); rerr != nil && !errors.Is(rerr, ErrNoSession) {
		c.metricInc(MetricLogoutRemoteFailure)
		c.log.Warn().Err(rerr).Msg("remote logout failed, local sign-out still applies")
	}
	return nil
}

// Refresh exchanges the current token for a fresh one and persists the
// replacement. The old token is overwritten, never kept.
//
// Refresh may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) Refresh(ctx context.Context) (*RefreshResult, error) {
	if c == nil {
		return nil, ErrClientNotReady
	}

	var resp refreshResponse
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, &resp, true); err != nil {
		c.metricInc(MetricRefreshFailure)
		return nil, err
	}
	if resp.Token == "" {
		c.metricInc(MetricRefreshFailure)
		return nil, fmt.Errorf("%w: refresh response missing token", ErrBadResponse)
	}

	if err := c.store.SaveToken(ctx, resp.Token); err != nil {
		c.metricInc(MetricRefreshFailure)
		return nil, fmt.Errorf("persist token: %w", err)
	}

	c.metricInc(MetricRefreshSuccess)
	return &RefreshResult{Success: true, Token: resp.Token}, nil
}

// CurrentUser fetches the authoritative identity from the server. Used at
// startup to catch tokens that decode locally but were revoked server-side.
//
// CurrentUser may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	if c == nil {
		return nil, ErrClientNotReady
	}

	var resp meResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &resp, true); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, fmt.Errorf("%w: me response missing user", ErrBadResponse)
	}
	return resp.User, nil
}

// IsAuthenticated reports whether a stored token exists and its exp claim
// has not passed. The check is purely local and does NOT verify the
// signature: it is a UX convenience, not a security boundary. A malformed
// or expired token is discarded so the store returns to a clean anonymous
// state.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	claims := c.usableClaims(ctx)
	return claims != nil
}

// UserFromToken derives a best-effort identity view from the stored token's
// unverified claims, avoiding a network round trip at startup. Returns nil
// when no usable token exists.
func (c *Client) UserFromToken(ctx context.Context) *User {
	return userFromClaims(c.usableClaims(ctx))
}

// usableClaims loads and decodes the stored token, discarding it when it is
// malformed or expired. nil means anonymous.
func (c *Client) usableClaims(ctx context.Context) *token.Claims {
	if c == nil {
		return nil
	}

	raw, err := c.store.LoadToken(ctx)
	if err != nil {
		return nil
	}

	claims, err := token.Decode(raw)
	if err != nil {
		c.discardToken(ctx, "malformed")
		return nil
	}
	if claims.Expired(time.Now()) {
		c.discardToken(ctx, "expired")
		return nil
	}
	return claims
}
