package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/ward/internal/model"
)

const recordColumns = `id, patient_id, doctor_notes, nurse_notes, diagnosis, prescription`

// CreateMedicalRecord inserts a record and returns the assigned id.
func (s *Store) CreateMedicalRecord(ctx context.Context, r model.MedicalRecord) (int64, error) {
	return s.insert(ctx, "create medical record", "medical_records", `
		INSERT INTO medical_records (patient_id, doctor_notes, nurse_notes, diagnosis, prescription)
		VALUES (?, ?, ?, ?, ?)
	`, r.PatientID, r.DoctorNotes, r.NurseNotes, r.Diagnosis, r.Prescription)
}

// GetMedicalRecord returns the record with the given id.
func (s *Store) GetMedicalRecord(ctx context.Context, id int64) (model.MedicalRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM medical_records WHERE id = ?`, id)
	r, err := scanRecord(row)
	if err != nil {
		return model.MedicalRecord{}, notFound("get medical record", id, err)
	}
	return r, nil
}

// ListMedicalRecords returns every record ordered by id.
func (s *Store) ListMedicalRecords(ctx context.Context) ([]model.MedicalRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+recordColumns+` FROM medical_records ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query medical records: %w", err)
	}
	return collect(rows, "medical records", scanRecord)
}

// UpdateMedicalRecord overwrites an existing record.
func (s *Store) UpdateMedicalRecord(ctx context.Context, r model.MedicalRecord) error {
	return s.execOne(ctx, "update medical record", "medical_records", r.ID, `
		UPDATE medical_records SET
			patient_id = ?, doctor_notes = ?, nurse_notes = ?, diagnosis = ?, prescription = ?
		WHERE id = ?
	`, r.PatientID, r.DoctorNotes, r.NurseNotes, r.Diagnosis, r.Prescription, r.ID)
}

// DeleteMedicalRecord removes a record.
func (s *Store) DeleteMedicalRecord(ctx context.Context, id int64) error {
	return s.execOne(ctx, "delete medical record", "medical_records", id,
		`DELETE FROM medical_records WHERE id = ?`, id)
}

func scanRecord(row scanner) (model.MedicalRecord, error) {
	var (
		r                   model.MedicalRecord
		nurse, prescription sql.NullString
	)
	if err := row.Scan(&r.ID, &r.PatientID, &r.DoctorNotes, &nurse, &r.Diagnosis, &prescription); err != nil {
		return model.MedicalRecord{}, err
	}
	r.NurseNotes = optString(nurse)
	r.Prescription = optString(prescription)
	return r, nil
}
