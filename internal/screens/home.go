package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/ward/internal/engine"
)

type menuItem struct {
	label string
	open  func() engine.Screen
}

type menuSection struct {
	title string
	items []menuItem
}

func homeMenu() []menuSection {
	return []menuSection{
		{"Patient Management", []menuItem{
			{"Add Patient", NewPatientAdd},
			{"List Patients", NewPatientList},
			{"Update Patient", NewPatientUpdate},
			{"Delete Patient", NewPatientDelete},
		}},
		{"Staff Scheduling", []menuItem{
			{"Add Staff", NewStaffAdd},
			{"List Staff", NewStaffList},
			{"Update Staff", NewStaffUpdate},
			{"Delete Staff", NewStaffDelete},
			{"Assign Shift", NewStaffAssign},
		}},
		{"Medical Records", []menuItem{
			{"Store Record", NewRecordStore},
			{"Retrieve Records", NewRecordRetrieve},
			{"Update Record", NewRecordUpdate},
			{"Delete Record", NewRecordDelete},
		}},
		{"Billing & Finance", []menuItem{
			{"Generate Invoice", NewInvoiceGenerate},
			{"View Invoices", NewInvoiceView},
			{"Update Invoice", NewInvoiceUpdate},
			{"Delete Invoice", NewInvoiceDelete},
		}},
		{"Reports & Analytics", []menuItem{
			{"Export Reports", NewReportExport},
		}},
	}
}

// Home is the main menu shown after login.
type Home struct {
	chrome
	sections []menuSection
	items    []menuItem
	selected int
	welcome  string
	counts   string
	dialog   confirm
}

// NewHome returns the main menu.
func NewHome() engine.Screen {
	h := &Home{sections: homeMenu()}
	for _, sec := range h.sections {
		h.items = append(h.items, sec.items...)
	}
	return h
}

func (h *Home) Name() string    { return "home" }
func (h *Home) Protected() bool { return true }

// Enter looks up the signed-in user and the current row counts.
func (h *Home) Enter(ctx context.Context, env engine.Env) error {
	if env.Session == nil {
		return fmt.Errorf("no active session")
	}
	u, err := env.Store.GetUser(ctx, env.Session.UserID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	h.welcome = "Welcome, " + u.Username

	parts := make([]string, 0, 5)
	for _, t := range []struct{ table, label string }{
		{"patients", "Patients"},
		{"staff", "Staff"},
		{"shifts", "Shifts"},
		{"medical_records", "Records"},
		{"invoices", "Invoices"},
	} {
		n, err := env.Store.Count(ctx, t.table)
		if err != nil {
			return err
		}
		parts = append(parts, fmt.Sprintf("%s: %d", t.label, n))
	}
	h.counts = strings.Join(parts, " | ")
	return nil
}

func (h *Home) HandleEvent(_ context.Context, _ engine.Env, ev engine.Event) engine.Outcome {
	h.clearMessages()

	if h.dialog.open {
		if h.dialog.handle(ev) == dialogYes {
			return engine.Replace(NewLogin()).WithEndSession()
		}
		return engine.Stay()
	}

	switch ev.Key {
	case engine.KeyUp, engine.KeyShiftTab:
		h.selected = (h.selected - 1 + len(h.items)) % len(h.items)
	case engine.KeyDown, engine.KeyTab:
		h.selected = (h.selected + 1) % len(h.items)
	case engine.KeyEnter:
		return engine.Push(h.items[h.selected].open())
	case engine.KeyEsc:
		h.dialog.ask("Are you sure you want to log out?")
	}
	return engine.Stay()
}

func (h *Home) Layout() engine.Layout {
	sections := make([]engine.MenuSection, len(h.sections))
	for i, sec := range h.sections {
		labels := make([]string, len(sec.items))
		for j, it := range sec.items {
			labels[j] = it.label
		}
		sections[i] = engine.MenuSection{Title: sec.title, Items: labels}
	}
	var lines []string
	if h.counts != "" {
		lines = []string{h.counts}
	}
	return engine.Layout{
		Title:    "Ward Hospital Records",
		Subtitle: h.welcome,
		Menu:     &engine.Menu{Sections: sections, Selected: h.selected},
		Lines:    lines,
		Dialog:   h.dialog.layout(),
		Banner:   h.banner,
		Notice:   h.notice,
		Help:     "UP/DOWN: Navigate | ENTER: Open | ESC: Logout",
	}
}
