package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/ward/internal/model"
)

// createTestStore creates a new file-backed store in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func strptr(s string) *string { return &s }

// createTestPatient returns a patient with every required field set.
func createTestPatient(first, last string) model.Patient {
	return model.Patient{
		FirstName:   first,
		LastName:    last,
		DateOfBirth: "1990-01-01",
		Gender:      model.GenderFemale,
		Address:     "1 Main St",
		PhoneNumber: "+14155552671",
	}
}

// createTestStaff returns a staff member with every required field set.
func createTestStaff(name string, role model.StaffRole) model.Staff {
	return model.Staff{
		Name:        name,
		Role:        role,
		PhoneNumber: "+14155552672",
		Address:     "2 Side St",
	}
}

func mustCreatePatient(t *testing.T, s *Store, p model.Patient) int64 {
	t.Helper()
	id, err := s.CreatePatient(context.Background(), p)
	if err != nil {
		t.Fatalf("CreatePatient() failed: %v", err)
	}
	return id
}

func mustCreateStaff(t *testing.T, s *Store, m model.Staff) int64 {
	t.Helper()
	id, err := s.CreateStaff(context.Background(), m)
	if err != nil {
		t.Fatalf("CreateStaff() failed: %v", err)
	}
	return id
}
