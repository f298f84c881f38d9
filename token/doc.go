// Package token decodes bearer token claims WITHOUT verifying the signature.
//
// The decode exists so the client can answer "does a session look active" and
// "who does the token say I am" without a network round trip at startup. It
// is a UX fast path, not a security boundary: the payload of a JWT is
// attacker-editable, and every privileged operation must still be authorized
// by the server. Nothing beyond UI visibility may be gated on what this
// package reports.
//
// # Architecture boundaries
//
// This package owns claim extraction and expiry arithmetic only. Token
// storage belongs to credstore; token acquisition belongs to the Client.
//
// # What this package must NOT do
//
//   - Verify signatures or pretend to. There is no key material here.
//   - Import any other goAuthClient package.
//   - Panic on malformed input; every failure is ErrMalformed.
package token
