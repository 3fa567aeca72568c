package screens

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/ward/internal/engine"
	"github.com/roach88/ward/internal/model"
	"github.com/roach88/ward/internal/store"
	"github.com/roach88/ward/internal/validate"
)

func staffFields() []*field {
	return []*field{
		text(validate.FieldName, "Name"),
		choice(validate.FieldRole, "Role (D/N/A/T)", model.StaffRoles),
		text(validate.FieldPhoneNumber, "Phone number"),
		text(validate.FieldEmail, "Email (optional)"),
		text(validate.FieldAddress, "Address"),
	}
}

func staffInput(f *form) validate.StaffInput {
	return validate.StaffInput{
		Name:        f.value(validate.FieldName),
		Role:        f.value(validate.FieldRole),
		PhoneNumber: f.value(validate.FieldPhoneNumber),
		Email:       f.value(validate.FieldEmail),
		Address:     f.value(validate.FieldAddress),
	}
}

// NewStaffAdd returns the staff registration form.
func NewStaffAdd() engine.Screen {
	return newFormScreen(formSpec{
		name:      "staff.add",
		title:     "Add Staff",
		protected: true,
		fields:    staffFields,
		help:      formHelp,
		submit: func(ctx context.Context, env engine.Env, f *form) (engine.Outcome, validate.Errors, error) {
			m, errs := env.Rules.Staff(staffInput(f))
			if !errs.OK() {
				return engine.Outcome{}, errs, nil
			}
			id, err := env.Store.CreateStaff(ctx, m)
			if err != nil {
				return engine.Outcome{}, nil, err
			}
			return engine.Replace(NewStaffList()).WithNotice(fmt.Sprintf("Staff member %d added.", id)), nil, nil
		},
	})
}

func staffRows(ctx context.Context, env engine.Env) (tableData, error) {
	staff, err := env.Store.ListStaff(ctx)
	if err != nil {
		return tableData{}, err
	}
	rows := make([]row, len(staff))
	for i, m := range staff {
		rows[i] = row{id: m.ID, cells: []string{
			strconv.FormatInt(m.ID, 10),
			m.Name,
			string(m.Role),
			m.PhoneNumber,
			model.Deref(m.Email),
		}}
	}
	return tableData{rows: rows, footer: fmt.Sprintf("%d staff member(s)", len(rows))}, nil
}

var staffColumns = []string{"ID", "Name", "Role", "Phone", "Email"}

// NewStaffList returns the searchable staff table.
func NewStaffList() engine.Screen {
	return newListScreen(listSpec{
		name:    "staff.list",
		title:   "Staff",
		columns: staffColumns,
		help:    browseHelp,
		load:    staffRows,
	})
}

// NewStaffUpdate returns a picker that opens the edit form for a staff member.
func NewStaffUpdate() engine.Screen {
	return newListScreen(listSpec{
		name:    "staff.update",
		title:   "Update Staff",
		columns: staffColumns,
		help:    pickHelp,
		load:    staffRows,
		pick:    func(r row) engine.Outcome { return engine.Push(NewStaffEdit(r.id)) },
	})
}

// NewStaffEdit returns the edit form for staff member id.
func NewStaffEdit(id int64) engine.Screen {
	return newFormScreen(formSpec{
		name:      "staff.edit",
		title:     fmt.Sprintf("Update Staff %d", id),
		protected: true,
		fields:    staffFields,
		help:      formHelp,
		load: func(ctx context.Context, env engine.Env, f *form) error {
			m, err := env.Store.GetStaff(ctx, id)
			if err != nil {
				return err
			}
			f.set(validate.FieldName, m.Name)
			f.set(validate.FieldRole, string(m.Role))
			f.set(validate.FieldPhoneNumber, m.PhoneNumber)
			f.set(validate.FieldEmail, model.Deref(m.Email))
			f.set(validate.FieldAddress, m.Address)
			return nil
		},
		submit: func(ctx context.Context, env engine.Env, f *form) (engine.Outcome, validate.Errors, error) {
			m, errs := env.Rules.Staff(staffInput(f))
			if !errs.OK() {
				return engine.Outcome{}, errs, nil
			}
			m.ID = id
			if err := env.Store.UpdateStaff(ctx, m); err != nil {
				return engine.Outcome{}, nil, err
			}
			return engine.Pop().WithNotice(fmt.Sprintf("Staff member %d updated.", id)), nil, nil
		},
	})
}

// NewStaffDelete returns a picker that deletes a staff member after confirmation.
// Staff with assigned shifts cannot be deleted.
func NewStaffDelete() engine.Screen {
	return newListScreen(listSpec{
		name:    "staff.delete",
		title:   "Delete Staff",
		columns: staffColumns,
		help:    pickHelp,
		load:    staffRows,
		noun:    "staff member",
		remove: func(ctx context.Context, env engine.Env, id int64) error {
			return env.Store.DeleteStaff(ctx, id)
		},
	})
}

// NewStaffAssign returns the shift assignment form. The staff member's
// existing shifts are listed under the form as soon as the id resolves.
func NewStaffAssign() engine.Screen {
	return newFormScreen(formSpec{
		name:      "staff.assign",
		title:     "Assign Shift",
		protected: true,
		fields: func() []*field {
			return []*field{
				text(validate.FieldStaff, "Staff ID"),
				text(validate.FieldDate, "Date (YYYY-MM-DD)"),
				choice(validate.FieldShift, "Shift (M/A/N)", model.ShiftLabels),
			}
		},
		help:    formHelp,
		details: staffShifts,
		submit: func(ctx context.Context, env engine.Env, f *form) (engine.Outcome, validate.Errors, error) {
			sh, errs, err := env.Rules.Shift(ctx, validate.ShiftInput{
				StaffID: f.value(validate.FieldStaff),
				Date:    f.value(validate.FieldDate),
				Shift:   f.value(validate.FieldShift),
			})
			if err != nil || !errs.OK() {
				return engine.Outcome{}, errs, err
			}
			if _, err := env.Store.CreateShift(ctx, sh); err != nil {
				return engine.Outcome{}, nil, err
			}
			msg := fmt.Sprintf("Assigned %s shift on %s to staff member %d.", sh.Label, sh.Date, sh.StaffID)
			return engine.Pop().WithNotice(msg), nil, nil
		},
	})
}

// staffShifts describes the staff member named by the staff_id field.
func staffShifts(ctx context.Context, env engine.Env, f *form) ([]string, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(f.value(validate.FieldStaff)), 10, 64)
	if err != nil || id <= 0 {
		return nil, nil
	}
	m, err := env.Store.GetStaff(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return []string{fmt.Sprintf("No staff member with ID %d", id)}, nil
	}
	if err != nil {
		return nil, err
	}
	shifts, err := env.Store.ListShiftsForStaff(ctx, id)
	if err != nil {
		return nil, err
	}

	lines := []string{fmt.Sprintf("%s (%s)", m.Name, m.Role)}
	if len(shifts) == 0 {
		return append(lines, "No shifts assigned"), nil
	}
	lines = append(lines, "Assigned shifts:")
	for _, sh := range shifts {
		lines = append(lines, fmt.Sprintf("  %s  %s", sh.Date, sh.Label))
	}
	return lines, nil
}
