package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ward/internal/engine"
	"github.com/roach88/ward/internal/validate"
)

func TestInvoiceGenerate_Totals(t *testing.T) {
	a := newApp(t)
	a.addPatient("Ada", "Lovelace")
	a.login("alice", "pw123")

	a.open("Generate Invoice")
	a.fill("1", "Bandage", "4", "1.25")
	a.press(engine.KeyEnter)
	require.Equal(t, "invoices.view", a.screen())
	assert.Equal(t, "Invoice 1 generated: 5.00.", a.layout().Notice)
	a.press(engine.KeyEsc)

	a.open("Generate Invoice")
	a.fill("1", "Consult", "1", "50")
	a.press(engine.KeyEnter)

	assert.Equal(t, [][]string{
		{"1", "Bandage", "1", "4", "1.25", "5.00"},
		{"2", "Consult", "1", "1", "50.00", "50.00"},
	}, a.rows())
	assert.Equal(t, "Grand total: 55.00", a.layout().Table.Footer)
}

func TestInvoiceGenerate_InvalidNumbers(t *testing.T) {
	a := newApp(t)
	a.addPatient("Ada", "Lovelace")
	a.login("alice", "pw123")
	a.open("Generate Invoice")

	a.fill("1", "Consult", "0", "-3")
	a.press(engine.KeyEnter)

	assert.Equal(t, "must be a whole number greater than 0", a.fieldError(validate.FieldQuantity))
	assert.Equal(t, "must be a number greater than or equal to 0", a.fieldError(validate.FieldCost))
	assert.Equal(t, 0, a.count("invoices"))
}

func TestInvoiceUpdateAndDelete(t *testing.T) {
	a := newApp(t)
	a.addPatient("Ada", "Lovelace")
	a.login("alice", "pw123")

	a.open("Generate Invoice")
	a.fill("1", "Consult", "1", "50")
	a.press(engine.KeyEnter)
	a.press(engine.KeyEsc)

	a.open("Update Invoice")
	a.press(engine.KeyEnter)
	require.Equal(t, "invoices.edit", a.screen())
	assert.Equal(t, "50", a.fieldValue(validate.FieldCost))

	a.press(engine.KeyTab, engine.KeyTab, engine.KeyBackspace)
	a.typeText("3")
	a.press(engine.KeyEnter)
	assert.Equal(t, "invoices.update", a.screen())
	assert.Equal(t, "3", a.rows()[0][3])
	a.press(engine.KeyEsc)

	a.open("Delete Invoice")
	a.press(engine.KeyEnter)
	a.typeText("y")
	assert.Equal(t, 0, a.count("invoices"))
}
