package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is an exported constant or variable used by the authentication client.
var ErrMalformed = errors.New("malformed token")

// Claims is the unverified identity view carried by a bearer token. The
// backend issues tokens with either a userId or an id claim; both map to
// UserID here.
//
// Claims instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Claims struct {
	UserID    string
	Name      string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// Decode extracts the payload claims of a three-segment base64url token
// without verifying its signature. Any structural problem (wrong segment
// count, bad encoding, non-JSON payload) yields ErrMalformed.
func Decode(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrMalformed
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	c := &Claims{
		UserID: firstString(claims, "userId", "id", "sub"),
		Name:   stringClaim(claims, "name"),
		Email:  stringClaim(claims, "email"),
		Role:   stringClaim(claims, "role"),
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}

// Expired reports whether the token's exp claim has passed. A token without
// an exp claim is treated as expired; the client never trusts an unbounded
// credential.
func (c *Claims) Expired(now time.Time) bool {
	if c == nil || c.ExpiresAt.IsZero() {
		return true
	}
	return !now.Before(c.ExpiresAt)
}

func stringClaim(m jwt.MapClaims, key string) string {
	v, _ := m[key].(string)
	return v
}

func firstString(m jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v := stringClaim(m, k); v != "" {
			return v
		}
	}
	return ""
}
