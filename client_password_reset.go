package goAuthClient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MrEthical07/goAuthClient/password"
)

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ForgotPassword asks the service to start a reset flow for email.
// Fire-and-report: no local state changes either way.
//
// ForgotPassword may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*MessageResult, error) {
	if c == nil {
		return nil, ErrClientNotReady
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	var resp serverMessage
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password", forgotPasswordRequest{Email: email}, &resp, false); err != nil {
		return nil, err
	}
	return &MessageResult{Success: true, Message: resp.Message}, nil
}

// ResetPassword completes a reset flow with the emailed reset token. The
// new password passes the local policy before anything reaches the network.
// No local session state changes: the user logs in with the new password
// afterwards.
//
// ResetPassword may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) (*MessageResult, error) {
	if c == nil {
		return nil, ErrClientNotReady
	}
	if resetToken == "" {
		return nil, fmt.Errorf("%w: reset token is required", ErrValidation)
	}
	if res := password.Validate(newPassword); !res.Valid {
		return nil, fmt.Errorf("%w: %s", ErrPasswordPolicy, strings.Join(res.Errors, "; "))
	}

	var resp serverMessage
	if err := c.do(ctx, http.MethodPost, "/auth/reset-password", resetPasswordRequest{Token: resetToken, NewPassword: newPassword}, &resp, false); err != nil {
		return nil, err
	}
	return &MessageResult{Success: true, Message: resp.Message}, nil
}
