package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ward/internal/model"
)

func TestPatient_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	want := createTestPatient("Jane", "Doe")
	want.Email = strptr("jane@example.com")
	want.Allergies = strptr("penicillin")

	id, err := s.CreatePatient(ctx, want)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	got, err := s.GetPatient(ctx, id)
	require.NoError(t, err)

	want.ID = id
	assert.Equal(t, want, got)
	assert.Nil(t, got.MedicalHistory, "unset optional column should stay nil")
}

func TestPatient_IDsAssignedByStore(t *testing.T) {
	s := createTestStore(t)

	p := createTestPatient("A", "One")
	p.ID = 99 // ignored

	first := mustCreatePatient(t, s, p)
	second := mustCreatePatient(t, s, createTestPatient("B", "Two"))

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

func TestListPatients_OrderedByID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	empty, err := s.ListPatients(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	mustCreatePatient(t, s, createTestPatient("Zed", "Last"))
	mustCreatePatient(t, s, createTestPatient("Amy", "First"))

	all, err := s.ListPatients(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Zed", all[0].FirstName)
	assert.Equal(t, "Amy", all[1].FirstName)
}

func TestUpdatePatient(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id := mustCreatePatient(t, s, createTestPatient("Jane", "Doe"))

	p, err := s.GetPatient(ctx, id)
	require.NoError(t, err)
	p.LastName = "Smith"
	p.CurrentMedications = strptr("ibuprofen")
	require.NoError(t, s.UpdatePatient(ctx, p))

	got, err := s.GetPatient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestUpdatePatient_NotFound(t *testing.T) {
	s := createTestStore(t)

	p := createTestPatient("Ghost", "Row")
	p.ID = 42
	err := s.UpdatePatient(context.Background(), p)
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestGetPatient_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.GetPatient(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePatient(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id := mustCreatePatient(t, s, createTestPatient("Jane", "Doe"))
	require.NoError(t, s.DeletePatient(ctx, id))

	_, err := s.GetPatient(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeletePatient(ctx, id), ErrNotFound)
}

func TestDeletePatient_RejectedWithDependents(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id := mustCreatePatient(t, s, createTestPatient("Jane", "Doe"))
	_, err := s.CreateInvoice(ctx, model.Invoice{PatientID: id, Item: "X-ray", Quantity: 1, Cost: 80})
	require.NoError(t, err)

	err = s.DeletePatient(ctx, id)
	require.Error(t, err)

	var ce *ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "patients", ce.Table)
	assert.Equal(t, "invoices", ce.Dependent)
	assert.Equal(t, 1, ce.Count)

	exists, err := s.PatientExists(ctx, id)
	require.NoError(t, err)
	assert.True(t, exists, "patient must survive a rejected delete")
}

func TestPatientExists(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	ok, err := s.PatientExists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	id := mustCreatePatient(t, s, createTestPatient("Jane", "Doe"))
	ok, err = s.PatientExists(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
}
