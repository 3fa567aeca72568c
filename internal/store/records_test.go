package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ward/internal/model"
)

func TestMedicalRecord_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	pid := mustCreatePatient(t, s, createTestPatient("Jane", "Doe"))
	want := model.MedicalRecord{
		PatientID:    pid,
		DoctorNotes:  "Presents with cough",
		Diagnosis:    "Bronchitis",
		Prescription: strptr("Amoxicillin 500mg"),
	}

	id, err := s.CreateMedicalRecord(ctx, want)
	require.NoError(t, err)

	got, err := s.GetMedicalRecord(ctx, id)
	require.NoError(t, err)
	want.ID = id
	assert.Equal(t, want, got)
	assert.Nil(t, got.NurseNotes)
}

func TestMedicalRecord_UpdateListDelete(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	pid := mustCreatePatient(t, s, createTestPatient("Jane", "Doe"))
	id, err := s.CreateMedicalRecord(ctx, model.MedicalRecord{PatientID: pid, DoctorNotes: "a", Diagnosis: "b"})
	require.NoError(t, err)

	r, err := s.GetMedicalRecord(ctx, id)
	require.NoError(t, err)
	r.NurseNotes = strptr("checked vitals")
	require.NoError(t, s.UpdateMedicalRecord(ctx, r))

	all, err := s.ListMedicalRecords(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "checked vitals", model.Deref(all[0].NurseNotes))

	require.NoError(t, s.DeleteMedicalRecord(ctx, id))
	assert.ErrorIs(t, s.DeleteMedicalRecord(ctx, id), ErrNotFound)

	// With the record gone the patient can be deleted.
	require.NoError(t, s.DeletePatient(ctx, pid))
}

func TestCreateMedicalRecord_UnknownPatient(t *testing.T) {
	s := createTestStore(t)

	_, err := s.CreateMedicalRecord(context.Background(), model.MedicalRecord{PatientID: 77, DoctorNotes: "a", Diagnosis: "b"})
	assert.True(t, IsConstraint(err), "got %v", err)
}

func TestDeletePatient_RejectedWithRecords(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	pid := mustCreatePatient(t, s, createTestPatient("Jane", "Doe"))
	_, err := s.CreateMedicalRecord(ctx, model.MedicalRecord{PatientID: pid, DoctorNotes: "a", Diagnosis: "b"})
	require.NoError(t, err)

	err = s.DeletePatient(ctx, pid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "medical_records")
}
