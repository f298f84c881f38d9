// Package role defines the account role hierarchy used for client-side
// authorization checks.
//
// Roles form a total order: user < business < admin. A higher role satisfies
// every check that a lower role satisfies, so callers gate features with
// "at least X" comparisons instead of exact matches. Adding a role means
// adding a constant and a level; call sites do not change.
//
// # Architecture boundaries
//
// This package owns role identity and ordering only. It does not decide WHO
// holds a role (that is the session's job) and it never talks to the network.
//
// # What this package must NOT do
//
//   - Import any other goAuthClient package.
//   - Treat an unknown role string as satisfying any check.
package role
