package goAuthClient

import (
	"github.com/MrEthical07/goAuthClient/role"
	"github.com/MrEthical07/goAuthClient/token"
)

// User is the identity record of the authenticated account. It is replaced
// wholesale on login, register, and refresh, and cleared on logout; the
// session never mutates individual fields.
type User struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  role.Role `json:"role"`
}

// LoginResult defines a public type used by goAuthClient APIs.
//
// LoginResult instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type LoginResult struct {
	Success bool
	User    *User
	Token   string
	Message string
}

// RegisterRequest carries the fields of a new account. Struct tags drive the
// local pre-flight validation; the password additionally passes the policy
// in the password package before anything reaches the network.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Business bool   `json:"isBusiness"`
}

// MessageResult defines a public type used by goAuthClient APIs.
//
// MessageResult instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MessageResult struct {
	Success bool
	Message string
}

// RefreshResult defines a public type used by goAuthClient APIs.
//
// RefreshResult instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RefreshResult struct {
	Success bool
	Token   string
}

// DeviceInfo identifies the installation sending a federated login request.
// ClientID is a uuid generated once per built client.
type DeviceInfo struct {
	ClientID string `json:"clientId"`
	Platform string `json:"platform"`
}

// userFromClaims builds the best-effort identity view of unverified token
// claims. Returns nil when the claims carry no subject.
func userFromClaims(c *token.Claims) *User {
	if c == nil || c.UserID == "" {
		return nil
	}
	return &User{
		ID:    c.UserID,
		Name:  c.Name,
		Email: c.Email,
		Role:  role.Role(c.Role),
	}
}
