package model

import (
	"fmt"
	"strings"
)

// DateLayout is the on-disk and on-screen format of every date column.
const DateLayout = "2006-01-02"

// User is an account that can sign in.
type User struct {
	ID           string
	Username     string
	PasswordHash string
}

// Gender of a patient.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists the accepted values in display order.
var Genders = []string{string(GenderMale), string(GenderFemale), string(GenderOther)}

// Patient is a person receiving care.
type Patient struct {
	ID                 int64
	FirstName          string
	LastName           string
	DateOfBirth        string
	Gender             Gender
	Address            string
	PhoneNumber        string
	Email              *string
	MedicalHistory     *string
	Allergies          *string
	CurrentMedications *string
}

// FullName joins first and last name.
func (p Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// StaffRole is the job of a staff member.
type StaffRole string

const (
	RoleDoctor     StaffRole = "Doctor"
	RoleNurse      StaffRole = "Nurse"
	RoleAdmin      StaffRole = "Admin"
	RoleTechnician StaffRole = "Technician"
)

// StaffRoles lists the accepted values in display order.
var StaffRoles = []string{string(RoleDoctor), string(RoleNurse), string(RoleAdmin), string(RoleTechnician)}

// Staff is an employee who can be assigned shifts.
type Staff struct {
	ID          int64
	Name        string
	Role        StaffRole
	PhoneNumber string
	Email       *string
	Address     string
}

// ShiftLabel names the part of the day a shift covers.
type ShiftLabel string

const (
	ShiftMorning   ShiftLabel = "Morning"
	ShiftAfternoon ShiftLabel = "Afternoon"
	ShiftNight     ShiftLabel = "Night"
)

// ShiftLabels lists the accepted values in display order.
var ShiftLabels = []string{string(ShiftMorning), string(ShiftAfternoon), string(ShiftNight)}

// Shift assigns a staff member to a date.
type Shift struct {
	ID      int64
	StaffID int64
	Date    string
	Label   ShiftLabel
}

// MedicalRecord is one clinical entry for a patient.
type MedicalRecord struct {
	ID           int64
	PatientID    int64
	DoctorNotes  string
	NurseNotes   *string
	Diagnosis    string
	Prescription *string
}

// Invoice is one billed line item for a patient.
type Invoice struct {
	ID        int64
	PatientID int64
	Item      string
	Quantity  int64
	Cost      float64
}

// Total is quantity times unit cost.
func (i Invoice) Total() float64 {
	return float64(i.Quantity) * i.Cost
}

// FormatMoney renders an amount with two decimals.
func FormatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Optional converts a trimmed form value into an optional column value.
// Blank input becomes nil.
func Optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the value of an optional column, or "" when unset.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// MatchChoice resolves user input against a list of choices, case-insensitively.
// Returns "" when nothing matches.
func MatchChoice(choices []string, in string) string {
	in = strings.TrimSpace(in)
	for _, c := range choices {
		if strings.EqualFold(c, in) {
			return c
		}
	}
	return ""
}
