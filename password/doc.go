// Package password implements the client-side password policy used at
// registration and password reset.
//
// # Rules
//
// A password is accepted only when ALL of the following hold:
//
//   - length of at least 8 characters
//   - at least 1 lowercase letter
//   - at least 1 uppercase letter
//   - at least 4 digits (a count, not mere presence)
//   - at least 1 special character from @ $ ! % * ? &
//   - no characters outside letters, digits, and that special set
//
// Validate also reports a 0–100 score (passed checks over 6) and a coarse
// strength label for live form feedback. Validation is pure and allocation
// is bounded by the returned value, so it is safe to run on every keystroke.
//
// # Architecture boundaries
//
// This package owns policy evaluation only. Hashing, storage, and server-side
// enforcement are not its concern; the backend re-validates everything it
// receives regardless of what this package reported.
//
// # What this package must NOT do
//
//   - Perform I/O or touch shared state.
//   - Import any other goAuthClient package.
//   - Log candidate passwords.
package password
