// Package auth verifies credentials and issues in-memory sessions.
//
// Passwords are stored as bcrypt hashes. User ids and session tokens are
// UUIDv7 strings from a TokenGenerator, so tests can substitute a
// FixedGenerator and get byte-identical results.
package auth
