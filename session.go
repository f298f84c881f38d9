package goAuthClient

import (
	"context"
	"sync"

	"github.com/MrEthical07/goAuthClient/role"
)

// Session is the process-wide view of "who is the current user and what can
// they do". It is an explicit, injected instance rather than a package
// singleton: construct one through [Builder.Build], call [Session.Start]
// once at application start, and [Session.Close] on teardown.
//
// Permission checks are synchronous and never panic. Before Start completes
// (or whenever no user is present) every check denies.
//
// Mutations carry a monotonically increasing version: each login, refresh,
// or logout captures the version when it begins and discards its result if
// another mutation landed first, so a stale in-flight response never
// overwrites newer state.
type Session struct {
	client *Client

	mu      sync.RWMutex
	user    *User
	loading bool
	version uint64
}

func newSession(c *Client) *Session {
	return &Session{client: c, loading: true}
}

// Client returns the underlying network client for direct operations
// (password reset, remember-me handling, metrics).
func (s *Session) Client() *Client {
	if s == nil {
		return nil
	}
	return s.client
}

// Start bootstraps the session: it validates the stored token locally and
// derives the user from its claims, falling back to the server's /auth/me
// when the claims carry no identity. The loading flag drops regardless of
// outcome, so a failed bootstrap leaves a working anonymous session.
func (s *Session) Start(ctx context.Context) {
	if s == nil {
		return
	}

	s.mu.Lock()
	s.loading = true
	v := s.version
	s.mu.Unlock()

	var user *User
	if s.client.IsAuthenticated(ctx) {
		user = s.client.UserFromToken(ctx)
		if user == nil {
			if fetched, err := s.client.CurrentUser(ctx); err == nil {
				user = fetched
			}
		}
	}

	if !s.commit(v, user) {
		s.endLoading()
	}
}

// Login authenticates and, on success, installs the returned user. Returns
// whether the session is authenticated afterwards. A result arriving after
// a newer mutation (another login, a logout) is discarded, not applied.
func (s *Session) Login(ctx context.Context, email, password string) bool {
	if s == nil {
		return false
	}

	v := s.begin()
	res, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.client.log.Debug().Str("reason", Message(err, err.Error())).Msg("login rejected")
		return s.IsAuthenticated()
	}

	s.commit(v, res.User)
	return s.IsAuthenticated()
}

// LoginPreResolved installs a session already resolved by an external
// identity flow (e.g. the federated login popup): the pair is trusted
// directly, the token is persisted, and no further network call is made.
// The server still authorizes every later request carrying this token.
func (s *Session) LoginPreResolved(ctx context.Context, tok string, user *User) bool {
	if s == nil || tok == "" || user == nil {
		return false
	}

	v := s.begin()
	if err := s.client.store.SaveToken(ctx, tok); err != nil {
		s.client.log.Warn().Err(err).Msg("failed to persist pre-resolved token")
		return s.IsAuthenticated()
	}

	s.commit(v, user)
	return s.IsAuthenticated()
}

// Refresh rotates the token and re-derives the user from the new claims.
// Returns whether the session is authenticated afterwards.
func (s *Session) Refresh(ctx context.Context) bool {
	if s == nil {
		return false
	}

	v := s.begin()
	if _, err := s.client.Refresh(ctx); err != nil {
		return s.IsAuthenticated()
	}

	user := s.client.UserFromToken(ctx)
	s.mu.RLock()
	prev := s.user
	s.mu.RUnlock()
	if user == nil {
		// Token rotated but carries no identity claims; keep the user we had.
		user = prev
	}

	s.commit(v, user)
	return s.IsAuthenticated()
}

// Logout delegates the remote invalidation to the client (best-effort, the
// local token clear is guaranteed there) and then unconditionally clears
// the in-memory user.
func (s *Session) Logout(ctx context.Context) {
	if s == nil {
		return
	}

	if err := s.client.Logout(ctx); err != nil {
		s.client.log.Warn().Err(err).Msg("logout did not fully clear local state")
	}

	s.mu.Lock()
	s.user = nil
	s.loading = false
	s.version++
	s.mu.Unlock()
}

// Close tears the session down for unmount or test teardown. The stored
// token is untouched; only in-memory state is dropped.
func (s *Session) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.user = nil
	s.loading = false
	s.version++
	s.mu.Unlock()
}

// User returns a copy of the current user, or nil when anonymous.
func (s *Session) User() *User {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsLoading reports whether the bootstrap is still in flight.
func (s *Session) IsLoading() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// IsAuthenticated reports whether a user is present. Deny-by-default while
// loading.
func (s *Session) IsAuthenticated() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.loading && s.user != nil
}

// HasRole reports whether the current user's role satisfies at least min.
// A missing user, a loading session, and an unknown role all deny.
func (s *Session) HasRole(min role.Role) bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loading || s.user == nil {
		return false
	}
	return s.user.Role.AtLeast(min)
}

// IsAdmin describes the isadmin operation and its observable behavior.
func (s *Session) IsAdmin() bool {
	return s.HasRole(role.Admin)
}

// IsBusiness describes the isbusiness operation and its observable behavior.
func (s *Session) IsBusiness() bool {
	return s.HasRole(role.Business)
}

// IsVIP reports elevated access: business and admin both qualify.
func (s *Session) IsVIP() bool {
	return s.HasRole(role.Business)
}

// CanCreateCards describes the cancreatecards operation and its observable behavior.
func (s *Session) CanCreateCards() bool {
	return s.HasRole(role.Business)
}

// CanManageUsers describes the canmanageusers operation and its observable behavior.
func (s *Session) CanManageUsers() bool {
	return s.HasRole(role.Admin)
}

// CanEditCard reports whether the current user may edit the card owned by
// ownerID: admins always may, everyone else only when they own it. The
// ownership override bypasses the role hierarchy entirely.
func (s *Session) CanEditCard(ownerID string) bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loading || s.user == nil {
		return false
	}
	if s.user.Role.AtLeast(role.Admin) {
		return true
	}
	return ownerID != "" && s.user.ID == ownerID
}

// begin captures the version a mutation starts from.
func (s *Session) begin() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// commit applies a mutation result only when no other mutation landed since
// v was captured. Stale results are counted and dropped.
func (s *Session) commit(v uint64, user *User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.version != v {
		s.client.metricInc(MetricStaleResultDiscarded)
		return false
	}
	s.version++
	s.user = user
	s.loading = false
	return true
}

func (s *Session) endLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}
