package goAuthClient

import (
	"errors"
	"fmt"
)

var (
	// ErrClientNotReady is an exported constant or variable used by the authentication client.
	ErrClientNotReady = errors.New("client not ready")
	// ErrInvalidCredentials is an exported constant or variable used by the authentication client.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is an exported constant or variable used by the authentication client.
	ErrUnauthorized = errors.New("session invalid or expired")
	// ErrForbidden is an exported constant or variable used by the authentication client.
	ErrForbidden = errors.New("insufficient role")
	// ErrUnavailable is an exported constant or variable used by the authentication client.
	ErrUnavailable = errors.New("auth service unavailable")
	// ErrNetwork is an exported constant or variable used by the authentication client.
	ErrNetwork = errors.New("network failure")
	// ErrBadResponse is an exported constant or variable used by the authentication client.
	ErrBadResponse = errors.New("malformed server response")
	// ErrValidation is an exported constant or variable used by the authentication client.
	ErrValidation = errors.New("request validation failed")
	// ErrPasswordPolicy is an exported constant or variable used by the authentication client.
	ErrPasswordPolicy = errors.New("password policy violation")
	// ErrNoSession is an exported constant or variable used by the authentication client.
	ErrNoSession = errors.New("no active session")
)

// APIError carries the HTTP status and server-provided message of a failed
// request. It unwraps to one of the category sentinels above, so callers
// branch with errors.Is and surface Message to the user when present.
type APIError struct {
	Status   int
	Message  string
	category error
}

// Error describes the error operation and its observable behavior.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("auth service returned %d: %v", e.Status, e.category)
	}
	return fmt.Sprintf("auth service returned %d: %s", e.Status, e.Message)
}

// Unwrap describes the unwrap operation and its observable behavior.
func (e *APIError) Unwrap() error {
	return e.category
}

// Message extracts the user-facing message of err: the server-provided text
// when err is an *APIError with one, otherwise fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
