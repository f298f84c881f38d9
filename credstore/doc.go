// Package credstore persists the two pieces of client-side credential state:
// the bearer token of the active session and the optional remembered login
// identifier.
//
// # Data model
//
// Exactly two independent string slots exist per profile:
//
//   - token: the opaque bearer credential. At most one is stored at a time;
//     Save overwrites unconditionally and Clear is idempotent.
//   - identifier: the "remember me" email used to pre-fill a login form. Its
//     lifecycle is independent of the token: clearing the token (logout)
//     leaves it in place.
//
// Stores are last-write-wins. Two processes sharing a profile can race and
// one of them will silently lose; the session layer detects the divergence
// on its next authenticated request.
//
// # Trust boundary
//
// Stored values are NOT encrypted. Possession of the stored token is
// possession of the session. Protect the profile location with filesystem
// permissions (the file store uses 0600) or network ACLs (the Redis store),
// not with expectations about this package.
//
// # What this package must NOT do
//
//   - Interpret or decode the token. It is an opaque string here.
//   - Import any other goAuthClient package.
//   - Log stored values.
package credstore
