package credstore

import (
	"context"
	"errors"
)

// ErrTokenNotFound is an exported constant or variable used by the authentication client.
var ErrTokenNotFound = errors.New("no stored token")

// ErrIdentifierNotFound is an exported constant or variable used by the authentication client.
var ErrIdentifierNotFound = errors.New("no remembered identifier")

// Store defines a public type used by goAuthClient APIs.
//
// Implementations must be safe for concurrent use. All operations are
// last-write-wins; no transactional discipline is applied across slots.
type Store interface {
	// SaveToken persists the bearer token, overwriting any existing one.
	SaveToken(ctx context.Context, token string) error
	// LoadToken returns the stored token or ErrTokenNotFound.
	LoadToken(ctx context.Context) (string, error)
	// ClearToken removes the token unconditionally. Clearing an absent
	// token is not an error. The identifier slot is untouched.
	ClearToken(ctx context.Context) error

	// RememberIdentifier persists the "remember me" email.
	RememberIdentifier(ctx context.Context, email string) error
	// LoadIdentifier returns the remembered email or ErrIdentifierNotFound.
	LoadIdentifier(ctx context.Context) (string, error)
	// ForgetIdentifier removes the remembered email. Idempotent.
	ForgetIdentifier(ctx context.Context) error
}
