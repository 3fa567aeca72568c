package auth

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes authentication failures.
type ErrorKind string

const (
	// KindNotFound indicates no user has the given username.
	KindNotFound ErrorKind = "NOT_FOUND"

	// KindMismatch indicates the password did not match the stored hash.
	KindMismatch ErrorKind = "MISMATCH"

	// KindDuplicate indicates the username is already registered.
	KindDuplicate ErrorKind = "DUPLICATE"
)

// AuthError is returned by Login and Register for credential problems.
// Store and hashing failures are returned as ordinary wrapped errors.
type AuthError struct {
	Kind     ErrorKind
	Username string
}

// Sentinels for errors.Is. Any AuthError of the same kind matches.
var (
	ErrNotFound  = &AuthError{Kind: KindNotFound}
	ErrMismatch  = &AuthError{Kind: KindMismatch}
	ErrDuplicate = &AuthError{Kind: KindDuplicate}
)

// Error implements the error interface.
func (e *AuthError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return "Invalid credentials: unknown user"
	case KindMismatch:
		return "Invalid credentials: wrong password"
	case KindDuplicate:
		if e.Username != "" {
			return fmt.Sprintf("Username %q is already taken", e.Username)
		}
		return "Username is already taken"
	}
	return fmt.Sprintf("authentication failed (%s)", e.Kind)
}

// Is matches any AuthError with the same Kind.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// IsAuthError returns true if err is or wraps an AuthError.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
