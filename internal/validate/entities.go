package validate

import (
	"context"

	"github.com/roach88/ward/internal/model"
)

// Field keys shared by validators and forms.
const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"

	FieldFirstName          = "first_name"
	FieldLastName           = "last_name"
	FieldDateOfBirth        = "date_of_birth"
	FieldGender             = "gender"
	FieldAddress            = "address"
	FieldPhoneNumber        = "phone_number"
	FieldEmail              = "email"
	FieldMedicalHistory     = "medical_history"
	FieldAllergies          = "allergies"
	FieldCurrentMedications = "current_medications"

	FieldName  = "name"
	FieldRole  = "role"
	FieldStaff = "staff_id"
	FieldDate  = "date"
	FieldShift = "shift"

	FieldPatient      = "patient_id"
	FieldDoctorNotes  = "doctor_notes"
	FieldNurseNotes   = "nurse_notes"
	FieldDiagnosis    = "diagnosis"
	FieldPrescription = "prescription"

	FieldItem     = "item"
	FieldQuantity = "quantity"
	FieldCost     = "cost"
)

// PatientInput is the raw text of a patient form.
type PatientInput struct {
	FirstName          string
	LastName           string
	DateOfBirth        string
	Gender             string
	Address            string
	PhoneNumber        string
	Email              string
	MedicalHistory     string
	Allergies          string
	CurrentMedications string
}

// Patient validates a patient form. The returned patient has ID 0.
func (r Rules) Patient(in PatientInput) (model.Patient, Errors) {
	errs := Errors{}
	p := model.Patient{
		FirstName:          required(errs, FieldFirstName, in.FirstName),
		LastName:           required(errs, FieldLastName, in.LastName),
		Gender:             model.Gender(choice(errs, FieldGender, in.Gender, model.Genders)),
		Address:            required(errs, FieldAddress, in.Address),
		PhoneNumber:        r.phone(errs, FieldPhoneNumber, in.PhoneNumber),
		Email:              email(errs, FieldEmail, in.Email),
		MedicalHistory:     model.Optional(in.MedicalHistory),
		Allergies:          model.Optional(in.Allergies),
		CurrentMedications: model.Optional(in.CurrentMedications),
	}

	dob, t := date(errs, FieldDateOfBirth, in.DateOfBirth)
	p.DateOfBirth = dob
	if !t.IsZero() && t.After(r.today()) {
		errs.add(FieldDateOfBirth, "cannot be in the future")
	}
	return p, errs
}

// StaffInput is the raw text of a staff form.
type StaffInput struct {
	Name        string
	Role        string
	PhoneNumber string
	Email       string
	Address     string
}

// Staff validates a staff form.
func (r Rules) Staff(in StaffInput) (model.Staff, Errors) {
	errs := Errors{}
	m := model.Staff{
		Name:        required(errs, FieldName, in.Name),
		Role:        model.StaffRole(choice(errs, FieldRole, in.Role, model.StaffRoles)),
		PhoneNumber: r.phone(errs, FieldPhoneNumber, in.PhoneNumber),
		Email:       email(errs, FieldEmail, in.Email),
		Address:     required(errs, FieldAddress, in.Address),
	}
	return m, errs
}

// ShiftInput is the raw text of a shift assignment form.
type ShiftInput struct {
	StaffID string
	Date    string
	Shift   string
}

// Shift validates a shift assignment. The staff id must exist.
// A non-nil error means the existence check itself failed.
func (r Rules) Shift(ctx context.Context, in ShiftInput) (model.Shift, Errors, error) {
	errs := Errors{}
	staffID, err := r.staffRef(ctx, errs, FieldStaff, in.StaffID)
	if err != nil {
		return model.Shift{}, errs, err
	}
	d, _ := date(errs, FieldDate, in.Date)
	return model.Shift{
		StaffID: staffID,
		Date:    d,
		Label:   model.ShiftLabel(choice(errs, FieldShift, in.Shift, model.ShiftLabels)),
	}, errs, nil
}

// RecordInput is the raw text of a medical record form.
type RecordInput struct {
	PatientID    string
	DoctorNotes  string
	NurseNotes   string
	Diagnosis    string
	Prescription string
}

// MedicalRecord validates a medical record. The patient id must exist.
func (r Rules) MedicalRecord(ctx context.Context, in RecordInput) (model.MedicalRecord, Errors, error) {
	errs := Errors{}
	patientID, err := r.patientRef(ctx, errs, FieldPatient, in.PatientID)
	if err != nil {
		return model.MedicalRecord{}, errs, err
	}
	return model.MedicalRecord{
		PatientID:    patientID,
		DoctorNotes:  required(errs, FieldDoctorNotes, in.DoctorNotes),
		NurseNotes:   model.Optional(in.NurseNotes),
		Diagnosis:    required(errs, FieldDiagnosis, in.Diagnosis),
		Prescription: model.Optional(in.Prescription),
	}, errs, nil
}

// InvoiceInput is the raw text of an invoice form.
type InvoiceInput struct {
	PatientID string
	Item      string
	Quantity  string
	Cost      string
}

// Invoice validates an invoice line. The patient id must exist.
func (r Rules) Invoice(ctx context.Context, in InvoiceInput) (model.Invoice, Errors, error) {
	errs := Errors{}
	patientID, err := r.patientRef(ctx, errs, FieldPatient, in.PatientID)
	if err != nil {
		return model.Invoice{}, errs, err
	}
	return model.Invoice{
		PatientID: patientID,
		Item:      required(errs, FieldItem, in.Item),
		Quantity:  quantity(errs, FieldQuantity, in.Quantity),
		Cost:      cost(errs, FieldCost, in.Cost),
	}, errs, nil
}

// Credentials validates a login form, or a registration form when confirm
// is non-nil. Passwords are not trimmed.
func Credentials(username, password string, confirm *string) Errors {
	errs := Errors{}
	required(errs, FieldUsername, username)
	if password == "" {
		errs.add(FieldPassword, "is required")
	}
	if confirm != nil && password != "" && *confirm != password {
		errs.add(FieldConfirmPassword, "passwords do not match")
	}
	return errs
}
