package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/ward/internal/model"
)

const patientColumns = `id, first_name, last_name, date_of_birth, gender, address,
	phone_number, email, medical_history, allergies, current_medications`

// CreatePatient inserts a patient and returns the assigned id.
// p.ID is ignored.
func (s *Store) CreatePatient(ctx context.Context, p model.Patient) (int64, error) {
	return s.insert(ctx, "create patient", "patients", `
		INSERT INTO patients
		(first_name, last_name, date_of_birth, gender, address, phone_number,
		 email, medical_history, allergies, current_medications)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.FirstName,
		p.LastName,
		p.DateOfBirth,
		string(p.Gender),
		p.Address,
		p.PhoneNumber,
		p.Email,
		p.MedicalHistory,
		p.Allergies,
		p.CurrentMedications,
	)
}

// GetPatient returns the patient with the given id.
// Returns ErrNotFound if absent.
func (s *Store) GetPatient(ctx context.Context, id int64) (model.Patient, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = ?`, id)
	p, err := scanPatient(row)
	if err != nil {
		return model.Patient{}, notFound("get patient", id, err)
	}
	return p, nil
}

// ListPatients returns every patient ordered by id.
func (s *Store) ListPatients(ctx context.Context) ([]model.Patient, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+patientColumns+` FROM patients ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query patients: %w", err)
	}
	return collect(rows, "patients", scanPatient)
}

// UpdatePatient overwrites every column of an existing patient.
// Returns ErrNotFound if p.ID does not exist.
func (s *Store) UpdatePatient(ctx context.Context, p model.Patient) error {
	return s.execOne(ctx, "update patient", "patients", p.ID, `
		UPDATE patients SET
			first_name = ?, last_name = ?, date_of_birth = ?, gender = ?, address = ?,
			phone_number = ?, email = ?, medical_history = ?, allergies = ?,
			current_medications = ?
		WHERE id = ?
	`,
		p.FirstName,
		p.LastName,
		p.DateOfBirth,
		string(p.Gender),
		p.Address,
		p.PhoneNumber,
		p.Email,
		p.MedicalHistory,
		p.Allergies,
		p.CurrentMedications,
		p.ID,
	)
}

// DeletePatient removes a patient.
//
// Refused with a ConstraintError while medical records or invoices still
// reference the patient. Returns ErrNotFound if id does not exist.
func (s *Store) DeletePatient(ctx context.Context, id int64) error {
	for _, dep := range []string{"medical_records", "invoices"} {
		n, err := s.dependents(ctx, dep, "patient_id", id)
		if err != nil {
			return fmt.Errorf("delete patient %d: %w", id, err)
		}
		if n > 0 {
			return &ConstraintError{Table: "patients", Dependent: dep, Count: n}
		}
	}
	return s.execOne(ctx, "delete patient", "patients", id, `DELETE FROM patients WHERE id = ?`, id)
}

// PatientExists reports whether a patient with the given id exists.
func (s *Store) PatientExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "patients", id)
}

func scanPatient(row scanner) (model.Patient, error) {
	var (
		p                                     model.Patient
		gender                                string
		email, history, allergies, medication sql.NullString
	)
	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.DateOfBirth,
		&gender,
		&p.Address,
		&p.PhoneNumber,
		&email,
		&history,
		&allergies,
		&medication,
	)
	if err != nil {
		return model.Patient{}, err
	}
	p.Gender = model.Gender(gender)
	p.Email = optString(email)
	p.MedicalHistory = optString(history)
	p.Allergies = optString(allergies)
	p.CurrentMedications = optString(medication)
	return p, nil
}
