// Package goAuthClient is the client-side counterpart of an authentication
// REST service: it acquires a bearer token through login/register/refresh,
// caches it in a durable credential store, derives a local session view from
// the token's claims, and gates UI-level feature access through a role
// hierarchy.
//
// The package is designed for embedding in user-facing front ends: every
// network operation is context-bound with a hard request timeout, no public
// operation panics, and every permission check is synchronous and
// deny-by-default.
//
// # Architecture boundaries
//
// goAuthClient is the public surface. It exposes [Client], [Session],
// [Builder], [Config], result types, and the error taxonomy. Policy
// evaluation lives in password, claim decoding in token, role ordering in
// role, and credential persistence in credstore.
//
// # What this package must NOT do
//
//   - Treat locally decoded token claims as proof of anything. The local
//     expiry check and claim view are UX fast paths; the server re-authorizes
//     every privileged operation.
//   - Retry failed requests. A timeout is an ordinary network failure and
//     the caller decides whether to re-invoke.
//   - Hash or store passwords. Plaintext goes over the wire to the service
//     exactly once per operation and is never persisted or logged.
package goAuthClient
