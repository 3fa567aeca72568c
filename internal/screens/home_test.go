package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ward/internal/engine"
	"github.com/roach88/ward/internal/model"
)

func TestHome_MenuSections(t *testing.T) {
	a := newApp(t)
	a.login("alice", "pw123")

	menu := a.layout().Menu
	require.NotNil(t, menu)
	titles := make([]string, len(menu.Sections))
	for i, s := range menu.Sections {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{
		"Patient Management",
		"Staff Scheduling",
		"Medical Records",
		"Billing & Finance",
		"Reports & Analytics",
	}, titles)
	assert.Equal(t, 0, menu.Selected)
}

func TestHome_CountsRefreshOnReturn(t *testing.T) {
	a := newApp(t)
	a.login("alice", "pw123")
	assert.Contains(t, a.layout().Lines, "Patients: 0 | Staff: 0 | Shifts: 0 | Records: 0 | Invoices: 0")

	a.open("List Patients")
	a.addPatient("Ada", "Lovelace")
	a.addStaff("Dr. Grey", model.RoleDoctor)
	a.press(engine.KeyEsc)

	require.Equal(t, "home", a.screen())
	assert.Contains(t, a.layout().Lines, "Patients: 1 | Staff: 1 | Shifts: 0 | Records: 0 | Invoices: 0")
}

func TestHome_SelectionWraps(t *testing.T) {
	a := newApp(t)
	a.login("alice", "pw123")

	a.press(engine.KeyUp)
	assert.Equal(t, 17, a.layout().Menu.Selected)
	a.press(engine.KeyDown)
	assert.Equal(t, 0, a.layout().Menu.Selected)
}

func TestHome_OpensEveryItem(t *testing.T) {
	want := map[string]string{
		"Add Patient":      "patients.add",
		"List Patients":    "patients.list",
		"Update Patient":   "patients.update",
		"Delete Patient":   "patients.delete",
		"Add Staff":        "staff.add",
		"List Staff":       "staff.list",
		"Update Staff":     "staff.update",
		"Delete Staff":     "staff.delete",
		"Assign Shift":     "staff.assign",
		"Store Record":     "records.store",
		"Retrieve Records": "records.retrieve",
		"Update Record":    "records.update",
		"Delete Record":    "records.delete",
		"Generate Invoice": "invoices.generate",
		"View Invoices":    "invoices.view",
		"Update Invoice":   "invoices.update",
		"Delete Invoice":   "invoices.delete",
		"Export Reports":   "reports.export",
	}

	a := newApp(t)
	a.login("alice", "pw123")
	for label, name := range want {
		a.open(label)
		assert.Equal(t, name, a.screen(), label)
		assert.Equal(t, 2, a.nav.Depth(), label)
		assert.Empty(t, a.layout().Banner, label)
		a.press(engine.KeyEsc)
		require.Equal(t, "home", a.screen(), label)
	}
}

func TestHome_Logout(t *testing.T) {
	a := newApp(t)
	a.login("alice", "pw123")

	a.press(engine.KeyEsc)
	require.NotNil(t, a.layout().Dialog)
	assert.Equal(t, "Are you sure you want to log out?", a.layout().Dialog.Message)

	// Enter on the default (No) keeps the session.
	a.press(engine.KeyEnter)
	assert.Equal(t, "home", a.screen())
	assert.NotNil(t, a.nav.Session())

	a.press(engine.KeyEsc, engine.KeyLeft, engine.KeyEnter)
	assert.Equal(t, "login", a.screen())
	assert.Nil(t, a.nav.Session())
	assert.Equal(t, 1, a.nav.Depth())
}

func TestHome_LayoutIsStable(t *testing.T) {
	a := newApp(t)
	a.login("alice", "pw123")
	assert.Equal(t, a.layout(), a.layout())
}
