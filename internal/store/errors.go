package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a row addressed by id or key does not exist.
var ErrNotFound = errors.New("record not found")

// ConstraintError reports a write rejected to preserve integrity.
//
// Dependent and Count are set when a delete was refused because other rows
// still reference the target; Err carries the driver error when SQLite
// itself rejected the statement.
type ConstraintError struct {
	// Table is the table the rejected statement targeted.
	Table string

	// Dependent names the referencing table (delete checks only).
	Dependent string

	// Count is the number of referencing rows (delete checks only).
	Count int

	// Err is the underlying driver error, if any.
	Err error
}

// Error implements the error interface.
func (e *ConstraintError) Error() string {
	if e.Dependent != "" {
		return fmt.Sprintf("cannot delete from %s: %d dependent row(s) in %s", e.Table, e.Count, e.Dependent)
	}
	if e.Err != nil {
		return fmt.Sprintf("constraint violation on %s: %v", e.Table, e.Err)
	}
	return fmt.Sprintf("constraint violation on %s", e.Table)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// IsConstraint returns true if err is or wraps a ConstraintError.
func IsConstraint(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce)
}

// classify turns SQLite constraint failures into ConstraintError and leaves
// every other error untouched.
func classify(table string, err error) error {
	var se sqlite3.Error
	if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint {
		return &ConstraintError{Table: table, Err: err}
	}
	return err
}
