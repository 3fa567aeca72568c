package screens

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/ward/internal/engine"
	"github.com/roach88/ward/internal/model"
	"github.com/roach88/ward/internal/store"
	"github.com/roach88/ward/internal/validate"
)

func recordFields() []*field {
	return []*field{
		text(validate.FieldPatient, "Patient ID"),
		text(validate.FieldDoctorNotes, "Doctor notes"),
		text(validate.FieldNurseNotes, "Nurse notes (optional)"),
		text(validate.FieldDiagnosis, "Diagnosis"),
		text(validate.FieldPrescription, "Prescription (optional)"),
	}
}

func recordInput(f *form) validate.RecordInput {
	return validate.RecordInput{
		PatientID:    f.value(validate.FieldPatient),
		DoctorNotes:  f.value(validate.FieldDoctorNotes),
		NurseNotes:   f.value(validate.FieldNurseNotes),
		Diagnosis:    f.value(validate.FieldDiagnosis),
		Prescription: f.value(validate.FieldPrescription),
	}
}

// patientName resolves the patient_id field for display under a form.
func patientName(ctx context.Context, env engine.Env, f *form) ([]string, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(f.value(validate.FieldPatient)), 10, 64)
	if err != nil || id <= 0 {
		return nil, nil
	}
	p, err := env.Store.GetPatient(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return []string{fmt.Sprintf("No patient with ID %d", id)}, nil
	}
	if err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("Patient: %s (born %s)", p.FullName(), p.DateOfBirth)}, nil
}

// NewRecordStore returns the form that stores a new medical record.
func NewRecordStore() engine.Screen {
	return newFormScreen(formSpec{
		name:      "records.store",
		title:     "Store Medical Record",
		protected: true,
		fields:    recordFields,
		help:      formHelp,
		details:   patientName,
		submit: func(ctx context.Context, env engine.Env, f *form) (engine.Outcome, validate.Errors, error) {
			r, errs, err := env.Rules.MedicalRecord(ctx, recordInput(f))
			if err != nil || !errs.OK() {
				return engine.Outcome{}, errs, err
			}
			id, err := env.Store.CreateMedicalRecord(ctx, r)
			if err != nil {
				return engine.Outcome{}, nil, err
			}
			return engine.Replace(NewRecordRetrieve()).WithNotice(fmt.Sprintf("Medical record %d stored.", id)), nil, nil
		},
	})
}

func recordRows(ctx context.Context, env engine.Env) (tableData, error) {
	records, err := env.Store.ListMedicalRecords(ctx)
	if err != nil {
		return tableData{}, err
	}
	rows := make([]row, len(records))
	for i, r := range records {
		rows[i] = row{id: r.ID, cells: []string{
			strconv.FormatInt(r.ID, 10),
			r.Diagnosis,
			strconv.FormatInt(r.PatientID, 10),
			r.DoctorNotes,
			model.Deref(r.Prescription),
		}}
	}
	return tableData{rows: rows, footer: fmt.Sprintf("%d record(s)", len(rows))}, nil
}

var recordColumns = []string{"ID", "Diagnosis", "Patient ID", "Doctor notes", "Prescription"}

// NewRecordRetrieve returns the searchable record table; Enter opens a record.
func NewRecordRetrieve() engine.Screen {
	return newListScreen(listSpec{
		name:    "records.retrieve",
		title:   "Medical Records",
		columns: recordColumns,
		help:    pickHelp,
		load:    recordRows,
		pick:    func(r row) engine.Outcome { return engine.Push(NewRecordDetail(r.id)) },
	})
}

// NewRecordDetail shows every field of one medical record.
func NewRecordDetail(id int64) engine.Screen {
	return newDetailScreen(detailSpec{
		name:  "records.detail",
		title: fmt.Sprintf("Medical Record %d", id),
		load: func(ctx context.Context, env engine.Env) ([]string, error) {
			r, err := env.Store.GetMedicalRecord(ctx, id)
			if err != nil {
				return nil, err
			}
			patient := strconv.FormatInt(r.PatientID, 10)
			if p, err := env.Store.GetPatient(ctx, r.PatientID); err == nil {
				patient += " (" + p.FullName() + ")"
			}
			return []string{
				"Patient:      " + patient,
				"Diagnosis:    " + r.Diagnosis,
				"Doctor notes: " + r.DoctorNotes,
				"Nurse notes:  " + orDash(r.NurseNotes),
				"Prescription: " + orDash(r.Prescription),
			}, nil
		},
	})
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// NewRecordUpdate returns a picker that opens the edit form for a record.
func NewRecordUpdate() engine.Screen {
	return newListScreen(listSpec{
		name:    "records.update",
		title:   "Update Medical Record",
		columns: recordColumns,
		help:    pickHelp,
		load:    recordRows,
		pick:    func(r row) engine.Outcome { return engine.Push(NewRecordEdit(r.id)) },
	})
}

// NewRecordEdit returns the edit form for record id.
func NewRecordEdit(id int64) engine.Screen {
	return newFormScreen(formSpec{
		name:      "records.edit",
		title:     fmt.Sprintf("Update Medical Record %d", id),
		protected: true,
		fields:    recordFields,
		help:      formHelp,
		details:   patientName,
		load: func(ctx context.Context, env engine.Env, f *form) error {
			r, err := env.Store.GetMedicalRecord(ctx, id)
			if err != nil {
				return err
			}
			f.set(validate.FieldPatient, strconv.FormatInt(r.PatientID, 10))
			f.set(validate.FieldDoctorNotes, r.DoctorNotes)
			f.set(validate.FieldNurseNotes, model.Deref(r.NurseNotes))
			f.set(validate.FieldDiagnosis, r.Diagnosis)
			f.set(validate.FieldPrescription, model.Deref(r.Prescription))
			return nil
		},
		submit: func(ctx context.Context, env engine.Env, f *form) (engine.Outcome, validate.Errors, error) {
			r, errs, err := env.Rules.MedicalRecord(ctx, recordInput(f))
			if err != nil || !errs.OK() {
				return engine.Outcome{}, errs, err
			}
			r.ID = id
			if err := env.Store.UpdateMedicalRecord(ctx, r); err != nil {
				return engine.Outcome{}, nil, err
			}
			return engine.Pop().WithNotice(fmt.Sprintf("Medical record %d updated.", id)), nil, nil
		},
	})
}

// NewRecordDelete returns a picker that deletes a record after confirmation.
func NewRecordDelete() engine.Screen {
	return newListScreen(listSpec{
		name:    "records.delete",
		title:   "Delete Medical Record",
		columns: recordColumns,
		help:    pickHelp,
		load:    recordRows,
		noun:    "medical record",
		remove: func(ctx context.Context, env engine.Env, id int64) error {
			return env.Store.DeleteMedicalRecord(ctx, id)
		},
	})
}
