package store

import (
	"context"
	"fmt"

	"github.com/roach88/ward/internal/model"
)

// CreateShift inserts a shift assignment and returns the assigned id.
// A staff_id that does not exist fails the foreign key and returns a
// ConstraintError.
func (s *Store) CreateShift(ctx context.Context, sh model.Shift) (int64, error) {
	return s.insert(ctx, "create shift", "shifts", `
		INSERT INTO shifts (staff_id, date, shift) VALUES (?, ?, ?)
	`, sh.StaffID, sh.Date, string(sh.Label))
}

// GetShift returns the shift with the given id.
func (s *Store) GetShift(ctx context.Context, id int64) (model.Shift, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, staff_id, date, shift FROM shifts WHERE id = ?`, id)
	sh, err := scanShift(row)
	if err != nil {
		return model.Shift{}, notFound("get shift", id, err)
	}
	return sh, nil
}

// ListShifts returns every shift ordered by id.
func (s *Store) ListShifts(ctx context.Context) ([]model.Shift, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, staff_id, date, shift FROM shifts ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query shifts: %w", err)
	}
	return collect(rows, "shifts", scanShift)
}

// ListShiftsForStaff returns one staff member's shifts ordered by id.
func (s *Store) ListShiftsForStaff(ctx context.Context, staffID int64) ([]model.Shift, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, staff_id, date, shift FROM shifts WHERE staff_id = ? ORDER BY id ASC
	`, staffID)
	if err != nil {
		return nil, fmt.Errorf("query shifts for staff %d: %w", staffID, err)
	}
	return collect(rows, "shifts", scanShift)
}

// UpdateShift overwrites an existing shift.
func (s *Store) UpdateShift(ctx context.Context, sh model.Shift) error {
	return s.execOne(ctx, "update shift", "shifts", sh.ID, `
		UPDATE shifts SET staff_id = ?, date = ?, shift = ? WHERE id = ?
	`, sh.StaffID, sh.Date, string(sh.Label), sh.ID)
}

// DeleteShift removes a shift assignment.
func (s *Store) DeleteShift(ctx context.Context, id int64) error {
	return s.execOne(ctx, "delete shift", "shifts", id, `DELETE FROM shifts WHERE id = ?`, id)
}

func scanShift(row scanner) (model.Shift, error) {
	var (
		sh    model.Shift
		label string
	)
	if err := row.Scan(&sh.ID, &sh.StaffID, &sh.Date, &label); err != nil {
		return model.Shift{}, err
	}
	sh.Label = model.ShiftLabel(label)
	return sh, nil
}
