package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert.Nil(t, Optional(""))
	assert.Nil(t, Optional("   "))

	v := Optional("  penicillin ")
	require.NotNil(t, v)
	assert.Equal(t, "penicillin", *v)
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "", Deref(nil))
	s := "x"
	assert.Equal(t, "x", Deref(&s))
}

func TestMatchChoice(t *testing.T) {
	assert.Equal(t, "Nurse", MatchChoice(StaffRoles, "nurse"))
	assert.Equal(t, "Night", MatchChoice(ShiftLabels, " NIGHT "))
	assert.Equal(t, "", MatchChoice(Genders, "unknown"))
}

func TestInvoiceTotal(t *testing.T) {
	inv := Invoice{Quantity: 3, Cost: 12.5}
	assert.InDelta(t, 37.5, inv.Total(), 0.0001)
	assert.Equal(t, "37.50", FormatMoney(inv.Total()))
}

func TestPatientFullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", Patient{FirstName: "Jane", LastName: "Doe"}.FullName())
	assert.Equal(t, "Jane", Patient{FirstName: "Jane"}.FullName())
}
