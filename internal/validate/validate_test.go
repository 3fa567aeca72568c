package validate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ward/internal/model"
)

type fakeRefs struct {
	patients map[int64]bool
	staff    map[int64]bool
	err      error
}

func (f fakeRefs) PatientExists(_ context.Context, id int64) (bool, error) {
	return f.patients[id], f.err
}

func (f fakeRefs) StaffExists(_ context.Context, id int64) (bool, error) {
	return f.staff[id], f.err
}

func testRules() Rules {
	return Rules{
		Region: "US",
		Now:    func() time.Time { return time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC) },
		Refs:   fakeRefs{patients: map[int64]bool{1: true}, staff: map[int64]bool{3: true}},
	}
}

func validPatient() PatientInput {
	return PatientInput{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1990-01-01",
		Gender:      "Female",
		Address:     "1 Main St",
		PhoneNumber: "+14155552671",
	}
}

func TestPatient_Valid(t *testing.T) {
	in := validPatient()
	in.Email = "jane@example.com"
	in.Allergies = "  penicillin "

	p, errs := testRules().Patient(in)
	assert.True(t, errs.OK(), "unexpected errors: %v", errs)
	assert.Equal(t, model.GenderFemale, p.Gender)
	assert.Equal(t, "penicillin", model.Deref(p.Allergies))
	assert.Nil(t, p.MedicalHistory)
	assert.Equal(t, int64(0), p.ID)
}

func TestPatient_MissingRequiredFields(t *testing.T) {
	_, errs := testRules().Patient(PatientInput{})

	assert.Equal(t, []string{
		FieldAddress, FieldDateOfBirth, FieldFirstName, FieldGender, FieldLastName, FieldPhoneNumber,
	}, errs.Fields())
	for _, msg := range errs {
		assert.Equal(t, "is required", msg)
	}
}

func TestPatient_WhitespaceIsMissing(t *testing.T) {
	in := validPatient()
	in.LastName = "   "

	_, errs := testRules().Patient(in)
	assert.Equal(t, Errors{FieldLastName: "is required"}, errs)
}

func TestPatient_DateOfBirth(t *testing.T) {
	tests := []struct {
		name  string
		dob   string
		valid bool
	}{
		{"past", "1990-01-01", true},
		{"today", "2024-05-01", true},
		{"tomorrow", "2024-05-02", false},
		{"bad format", "01/02/1990", false},
		{"impossible day", "2023-02-30", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validPatient()
			in.DateOfBirth = tt.dob
			_, errs := testRules().Patient(in)
			_, failed := errs[FieldDateOfBirth]
			assert.Equal(t, !tt.valid, failed, "errors: %v", errs)
		})
	}
}

func TestPatient_GenderChoices(t *testing.T) {
	for in, want := range map[string]model.Gender{
		"male":  model.GenderMale,
		"M":     model.GenderMale,
		"f":     model.GenderFemale,
		"Other": model.GenderOther,
	} {
		p := validPatient()
		p.Gender = in
		got, errs := testRules().Patient(p)
		require.True(t, errs.OK(), "%q: %v", in, errs)
		assert.Equal(t, want, got.Gender)
	}

	p := validPatient()
	p.Gender = "X"
	_, errs := testRules().Patient(p)
	assert.Equal(t, "must be one of Male, Female, Other", errs[FieldGender])
}

func TestPhoneNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"+14155552671", "+14155552671", true},
		{"415-555-2671", "+14155552671", true},
		{"12", "", false},
		{"abc", "", false},
	}
	for _, tt := range tests {
		in := validPatient()
		in.PhoneNumber = tt.in
		p, errs := testRules().Patient(in)
		if tt.ok {
			require.True(t, errs.OK(), "%q: %v", tt.in, errs)
			assert.Equal(t, tt.want, p.PhoneNumber)
		} else {
			assert.Equal(t, "is not a valid phone number", errs[FieldPhoneNumber], tt.in)
		}
	}
}

func TestEmail(t *testing.T) {
	in := validPatient()
	in.Email = "not-an-email"
	_, errs := testRules().Patient(in)
	assert.Contains(t, errs, FieldEmail)

	in.Email = "Jane <jane@example.com>"
	_, errs = testRules().Patient(in)
	assert.Contains(t, errs, FieldEmail, "display-name form is rejected")
}

func TestStaff(t *testing.T) {
	m, errs := testRules().Staff(StaffInput{
		Name:        "Dr. Grey",
		Role:        "d",
		PhoneNumber: "+14155552672",
		Address:     "2 Side St",
	})
	require.True(t, errs.OK(), "%v", errs)
	assert.Equal(t, model.RoleDoctor, m.Role)
	assert.Nil(t, m.Email)

	_, errs = testRules().Staff(StaffInput{Role: "Janitor"})
	assert.Equal(t, []string{FieldAddress, FieldName, FieldPhoneNumber, FieldRole}, errs.Fields())
}

func TestShift(t *testing.T) {
	ctx := context.Background()

	s, errs, err := testRules().Shift(ctx, ShiftInput{StaffID: "3", Date: "2024-05-03", Shift: "n"})
	require.NoError(t, err)
	require.True(t, errs.OK(), "%v", errs)
	assert.Equal(t, model.Shift{StaffID: 3, Date: "2024-05-03", Label: model.ShiftNight}, s)

	_, errs, err = testRules().Shift(ctx, ShiftInput{StaffID: "9", Date: "2024-05-03", Shift: "Morning"})
	require.NoError(t, err)
	assert.Equal(t, "no staff member with id 9", errs[FieldStaff])

	_, errs, err = testRules().Shift(ctx, ShiftInput{StaffID: "three", Date: "x", Shift: ""})
	require.NoError(t, err)
	assert.Equal(t, []string{FieldDate, FieldShift, FieldStaff}, errs.Fields())
}

func TestMedicalRecord_MissingPatient(t *testing.T) {
	_, errs, err := testRules().MedicalRecord(context.Background(), RecordInput{
		PatientID:   "7",
		DoctorNotes: "notes",
		Diagnosis:   "flu",
	})
	require.NoError(t, err)
	assert.Equal(t, Errors{FieldPatient: "no patient with id 7"}, errs)
}

func TestMedicalRecord_Valid(t *testing.T) {
	r, errs, err := testRules().MedicalRecord(context.Background(), RecordInput{
		PatientID:    "1",
		DoctorNotes:  "notes",
		Diagnosis:    "flu",
		Prescription: "rest",
	})
	require.NoError(t, err)
	require.True(t, errs.OK())
	assert.Equal(t, int64(1), r.PatientID)
	assert.Equal(t, "rest", model.Deref(r.Prescription))
	assert.Nil(t, r.NurseNotes)
}

func TestMedicalRecord_LookupFailure(t *testing.T) {
	rules := testRules()
	boom := errors.New("database is locked")
	rules.Refs = fakeRefs{err: boom}

	_, _, err := rules.MedicalRecord(context.Background(), RecordInput{PatientID: "1", DoctorNotes: "a", Diagnosis: "b"})
	assert.ErrorIs(t, err, boom)
}

func TestInvoice(t *testing.T) {
	ctx := context.Background()

	inv, errs, err := testRules().Invoice(ctx, InvoiceInput{PatientID: "1", Item: "X-ray", Quantity: "2", Cost: "80.50"})
	require.NoError(t, err)
	require.True(t, errs.OK(), "%v", errs)
	assert.Equal(t, model.Invoice{PatientID: 1, Item: "X-ray", Quantity: 2, Cost: 80.5}, inv)

	_, errs, err = testRules().Invoice(ctx, InvoiceInput{PatientID: "1", Item: "X-ray", Quantity: "0", Cost: "-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{FieldCost, FieldQuantity}, errs.Fields())

	_, errs, err = testRules().Invoice(ctx, InvoiceInput{PatientID: "1", Item: "X-ray", Quantity: "1.5", Cost: "NaN"})
	require.NoError(t, err)
	assert.Equal(t, []string{FieldCost, FieldQuantity}, errs.Fields())

	_, errs, err = testRules().Invoice(ctx, InvoiceInput{PatientID: "1", Item: "Consult", Quantity: "1", Cost: "0"})
	require.NoError(t, err)
	assert.True(t, errs.OK(), "zero cost is allowed")
}

func TestCredentials(t *testing.T) {
	assert.True(t, Credentials("alice", "pw", nil).OK())
	assert.Equal(t, []string{FieldPassword, FieldUsername}, Credentials(" ", "", nil).Fields())

	confirm := "other"
	assert.Equal(t, Errors{FieldConfirmPassword: "passwords do not match"}, Credentials("alice", "pw", &confirm))

	confirm = "pw"
	assert.True(t, Credentials("alice", "pw", &confirm).OK())
}

func TestResolveChoice(t *testing.T) {
	assert.Equal(t, "Afternoon", ResolveChoice(model.ShiftLabels, "a"))
	assert.Equal(t, "Technician", ResolveChoice(model.StaffRoles, "TECHNICIAN"))
	assert.Equal(t, "", ResolveChoice(model.StaffRoles, "x"))
	assert.Equal(t, "", ResolveChoice([]string{"Alpha", "Apex"}, "a"), "ambiguous letter")
}

func TestNilRefsSkipsExistenceCheck(t *testing.T) {
	rules := testRules()
	rules.Refs = nil

	_, errs, err := rules.Invoice(context.Background(), InvoiceInput{PatientID: "99", Item: "X", Quantity: "1", Cost: "1"})
	require.NoError(t, err)
	assert.True(t, errs.OK())
}
