package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/ward/internal/model"
)

// CreateStaff inserts a staff member and returns the assigned id.
func (s *Store) CreateStaff(ctx context.Context, m model.Staff) (int64, error) {
	return s.insert(ctx, "create staff", "staff", `
		INSERT INTO staff (name, role, phone_number, email, address)
		VALUES (?, ?, ?, ?, ?)
	`, m.Name, string(m.Role), m.PhoneNumber, m.Email, m.Address)
}

// GetStaff returns the staff member with the given id.
// Returns ErrNotFound if absent.
func (s *Store) GetStaff(ctx context.Context, id int64) (model.Staff, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, role, phone_number, email, address FROM staff WHERE id = ?
	`, id)
	m, err := scanStaff(row)
	if err != nil {
		return model.Staff{}, notFound("get staff", id, err)
	}
	return m, nil
}

// ListStaff returns every staff member ordered by id.
func (s *Store) ListStaff(ctx context.Context) ([]model.Staff, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, role, phone_number, email, address FROM staff ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query staff: %w", err)
	}
	return collect(rows, "staff", scanStaff)
}

// UpdateStaff overwrites every column of an existing staff member.
func (s *Store) UpdateStaff(ctx context.Context, m model.Staff) error {
	return s.execOne(ctx, "update staff", "staff", m.ID, `
		UPDATE staff SET name = ?, role = ?, phone_number = ?, email = ?, address = ?
		WHERE id = ?
	`, m.Name, string(m.Role), m.PhoneNumber, m.Email, m.Address, m.ID)
}

// DeleteStaff removes a staff member.
// Refused with a ConstraintError while shifts still reference them.
func (s *Store) DeleteStaff(ctx context.Context, id int64) error {
	n, err := s.dependents(ctx, "shifts", "staff_id", id)
	if err != nil {
		return fmt.Errorf("delete staff %d: %w", id, err)
	}
	if n > 0 {
		return &ConstraintError{Table: "staff", Dependent: "shifts", Count: n}
	}
	return s.execOne(ctx, "delete staff", "staff", id, `DELETE FROM staff WHERE id = ?`, id)
}

// StaffExists reports whether a staff member with the given id exists.
func (s *Store) StaffExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "staff", id)
}

func scanStaff(row scanner) (model.Staff, error) {
	var (
		m     model.Staff
		role  string
		email sql.NullString
	)
	if err := row.Scan(&m.ID, &m.Name, &role, &m.PhoneNumber, &email, &m.Address); err != nil {
		return model.Staff{}, err
	}
	m.Role = model.StaffRole(role)
	m.Email = optString(email)
	return m, nil
}
