package engine

import (
	"errors"
	"fmt"
)

// NavigationGuardError is raised when a protected screen would become
// active without a session. The Navigator recovers by resetting the stack
// to the login screen; the error is logged, never displayed.
type NavigationGuardError struct {
	// Screen is the protected screen that was refused.
	Screen string

	// Seq is the dispatch that tripped the guard.
	Seq int64
}

// Error implements the error interface.
func (e *NavigationGuardError) Error() string {
	return fmt.Sprintf("navigation to %s requires a session (seq=%d)", e.Screen, e.Seq)
}

// IsGuardError returns true if err is or wraps a NavigationGuardError.
func IsGuardError(err error) bool {
	var ge *NavigationGuardError
	return errors.As(err, &ge)
}

// EnterError reports a screen that could not load its data.
type EnterError struct {
	Screen string
	Err    error
}

// Error implements the error interface.
func (e *EnterError) Error() string {
	return fmt.Sprintf("enter %s: %v", e.Screen, e.Err)
}

func (e *EnterError) Unwrap() error {
	return e.Err
}
