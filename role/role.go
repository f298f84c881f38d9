package role

import (
	"errors"
	"strings"
)

// Role defines a public type used by goAuthClient APIs.
//
// Role instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Role string

const (
	// User is the base role assigned to every registered account.
	User Role = "user"
	// Business unlocks card creation and the elevated (VIP) feature set.
	Business Role = "business"
	// Admin sits at the top of the hierarchy and additionally passes
	// ownership checks unconditionally.
	Admin Role = "admin"
)

// ErrUnknownRole is an exported constant or variable used by the authentication client.
var ErrUnknownRole = errors.New("unknown role")

// Parse normalizes and validates a role string received from the server or
// decoded from a token. Unknown values are rejected rather than defaulted,
// so a corrupted role claim never grants access.
func Parse(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case User:
		return User, nil
	case Business:
		return Business, nil
	case Admin:
		return Admin, nil
	default:
		return "", ErrUnknownRole
	}
}

// Level returns the role's position in the total order. Unknown roles map
// to 0 and therefore never satisfy AtLeast.
func (r Role) Level() int {
	switch r {
	case User:
		return 1
	case Business:
		return 2
	case Admin:
		return 3
	default:
		return 0
	}
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r.Level() > 0
}

// AtLeast reports whether r satisfies a check requiring at least min.
// Both sides must be known roles; an unknown role on either side denies.
func (r Role) AtLeast(min Role) bool {
	rl, ml := r.Level(), min.Level()
	return rl > 0 && ml > 0 && rl >= ml
}

// String describes the string operation and its observable behavior.
func (r Role) String() string {
	return string(r)
}
