package screens

import (
	"context"
	"fmt"
	"strconv"

	"github.com/roach88/ward/internal/engine"
	"github.com/roach88/ward/internal/model"
	"github.com/roach88/ward/internal/validate"
)

const (
	formHelp   = "TAB/Arrow Keys: Navigate | ENTER: Submit | ESC: Cancel"
	pickHelp   = "Type to search | UP/DOWN: Select | ENTER: Choose | ESC: Back"
	browseHelp = "Type to search | UP/DOWN: Scroll | ESC: Back"
)

func patientFields() []*field {
	return []*field{
		text(validate.FieldFirstName, "First name"),
		text(validate.FieldLastName, "Last name"),
		text(validate.FieldDateOfBirth, "Date of birth (YYYY-MM-DD)"),
		choice(validate.FieldGender, "Gender (M/F/O)", model.Genders),
		text(validate.FieldAddress, "Address"),
		text(validate.FieldPhoneNumber, "Phone number"),
		text(validate.FieldEmail, "Email (optional)"),
		text(validate.FieldMedicalHistory, "Medical history (optional)"),
		text(validate.FieldAllergies, "Allergies (optional)"),
		text(validate.FieldCurrentMedications, "Current medications (optional)"),
	}
}

func patientInput(f *form) validate.PatientInput {
	return validate.PatientInput{
		FirstName:          f.value(validate.FieldFirstName),
		LastName:           f.value(validate.FieldLastName),
		DateOfBirth:        f.value(validate.FieldDateOfBirth),
		Gender:             f.value(validate.FieldGender),
		Address:            f.value(validate.FieldAddress),
		PhoneNumber:        f.value(validate.FieldPhoneNumber),
		Email:              f.value(validate.FieldEmail),
		MedicalHistory:     f.value(validate.FieldMedicalHistory),
		Allergies:          f.value(validate.FieldAllergies),
		CurrentMedications: f.value(validate.FieldCurrentMedications),
	}
}

func fillPatient(f *form, p model.Patient) {
	f.set(validate.FieldFirstName, p.FirstName)
	f.set(validate.FieldLastName, p.LastName)
	f.set(validate.FieldDateOfBirth, p.DateOfBirth)
	f.set(validate.FieldGender, string(p.Gender))
	f.set(validate.FieldAddress, p.Address)
	f.set(validate.FieldPhoneNumber, p.PhoneNumber)
	f.set(validate.FieldEmail, model.Deref(p.Email))
	f.set(validate.FieldMedicalHistory, model.Deref(p.MedicalHistory))
	f.set(validate.FieldAllergies, model.Deref(p.Allergies))
	f.set(validate.FieldCurrentMedications, model.Deref(p.CurrentMedications))
}

// NewPatientAdd returns the patient registration form.
func NewPatientAdd() engine.Screen {
	return newFormScreen(formSpec{
		name:      "patients.add",
		title:     "Add Patient",
		protected: true,
		fields:    patientFields,
		help:      formHelp,
		submit: func(ctx context.Context, env engine.Env, f *form) (engine.Outcome, validate.Errors, error) {
			p, errs := env.Rules.Patient(patientInput(f))
			if !errs.OK() {
				return engine.Outcome{}, errs, nil
			}
			id, err := env.Store.CreatePatient(ctx, p)
			if err != nil {
				return engine.Outcome{}, nil, err
			}
			return engine.Replace(NewPatientList()).WithNotice(fmt.Sprintf("Patient %d added.", id)), nil, nil
		},
	})
}

func patientRows(ctx context.Context, env engine.Env) (tableData, error) {
	patients, err := env.Store.ListPatients(ctx)
	if err != nil {
		return tableData{}, err
	}
	rows := make([]row, len(patients))
	for i, p := range patients {
		rows[i] = row{id: p.ID, cells: []string{
			strconv.FormatInt(p.ID, 10),
			p.FullName(),
			p.DateOfBirth,
			string(p.Gender),
			p.PhoneNumber,
		}}
	}
	return tableData{rows: rows, footer: fmt.Sprintf("%d patient(s)", len(rows))}, nil
}

var patientColumns = []string{"ID", "Name", "Date of birth", "Gender", "Phone"}

// NewPatientList returns the searchable patient table.
func NewPatientList() engine.Screen {
	return newListScreen(listSpec{
		name:    "patients.list",
		title:   "Patients",
		columns: patientColumns,
		help:    browseHelp,
		load:    patientRows,
	})
}

// NewPatientUpdate returns a picker that opens the edit form for a patient.
func NewPatientUpdate() engine.Screen {
	return newListScreen(listSpec{
		name:    "patients.update",
		title:   "Update Patient",
		columns: patientColumns,
		help:    pickHelp,
		load:    patientRows,
		pick:    func(r row) engine.Outcome { return engine.Push(NewPatientEdit(r.id)) },
	})
}

// NewPatientEdit returns the edit form for patient id, pre-filled on entry.
func NewPatientEdit(id int64) engine.Screen {
	return newFormScreen(formSpec{
		name:      "patients.edit",
		title:     fmt.Sprintf("Update Patient %d", id),
		protected: true,
		fields:    patientFields,
		help:      formHelp,
		load: func(ctx context.Context, env engine.Env, f *form) error {
			p, err := env.Store.GetPatient(ctx, id)
			if err != nil {
				return err
			}
			fillPatient(f, p)
			return nil
		},
		submit: func(ctx context.Context, env engine.Env, f *form) (engine.Outcome, validate.Errors, error) {
			p, errs := env.Rules.Patient(patientInput(f))
			if !errs.OK() {
				return engine.Outcome{}, errs, nil
			}
			p.ID = id
			if err := env.Store.UpdatePatient(ctx, p); err != nil {
				return engine.Outcome{}, nil, err
			}
			return engine.Pop().WithNotice(fmt.Sprintf("Patient %d updated.", id)), nil, nil
		},
	})
}

// NewPatientDelete returns a picker that deletes a patient after confirmation.
func NewPatientDelete() engine.Screen {
	return newListScreen(listSpec{
		name:    "patients.delete",
		title:   "Delete Patient",
		columns: patientColumns,
		help:    pickHelp,
		load:    patientRows,
		noun:    "patient",
		remove: func(ctx context.Context, env engine.Env, id int64) error {
			return env.Store.DeletePatient(ctx, id)
		},
	})
}
