package screens

import (
	"context"
	"fmt"
	"strconv"

	"github.com/roach88/ward/internal/engine"
	"github.com/roach88/ward/internal/model"
	"github.com/roach88/ward/internal/validate"
)

func invoiceFields() []*field {
	return []*field{
		text(validate.FieldPatient, "Patient ID"),
		text(validate.FieldItem, "Item"),
		text(validate.FieldQuantity, "Quantity"),
		text(validate.FieldCost, "Unit cost"),
	}
}

func invoiceInput(f *form) validate.InvoiceInput {
	return validate.InvoiceInput{
		PatientID: f.value(validate.FieldPatient),
		Item:      f.value(validate.FieldItem),
		Quantity:  f.value(validate.FieldQuantity),
		Cost:      f.value(validate.FieldCost),
	}
}

// NewInvoiceGenerate returns the form that bills a patient for one item.
func NewInvoiceGenerate() engine.Screen {
	return newFormScreen(formSpec{
		name:      "invoices.generate",
		title:     "Generate Invoice",
		protected: true,
		fields:    invoiceFields,
		help:      formHelp,
		details:   patientName,
		submit: func(ctx context.Context, env engine.Env, f *form) (engine.Outcome, validate.Errors, error) {
			inv, errs, err := env.Rules.Invoice(ctx, invoiceInput(f))
			if err != nil || !errs.OK() {
				return engine.Outcome{}, errs, err
			}
			id, err := env.Store.CreateInvoice(ctx, inv)
			if err != nil {
				return engine.Outcome{}, nil, err
			}
			msg := fmt.Sprintf("Invoice %d generated: %s.", id, model.FormatMoney(inv.Total()))
			return engine.Replace(NewInvoiceView()).WithNotice(msg), nil, nil
		},
	})
}

func invoiceRows(ctx context.Context, env engine.Env) (tableData, error) {
	invoices, err := env.Store.ListInvoices(ctx)
	if err != nil {
		return tableData{}, err
	}
	var grand float64
	rows := make([]row, len(invoices))
	for i, inv := range invoices {
		grand += inv.Total()
		rows[i] = row{id: inv.ID, cells: []string{
			strconv.FormatInt(inv.ID, 10),
			inv.Item,
			strconv.FormatInt(inv.PatientID, 10),
			strconv.FormatInt(inv.Quantity, 10),
			model.FormatMoney(inv.Cost),
			model.FormatMoney(inv.Total()),
		}}
	}
	return tableData{rows: rows, footer: "Grand total: " + model.FormatMoney(grand)}, nil
}

var invoiceColumns = []string{"ID", "Item", "Patient ID", "Qty", "Unit cost", "Total"}

// NewInvoiceView returns the invoice table with per-row and grand totals.
func NewInvoiceView() engine.Screen {
	return newListScreen(listSpec{
		name:    "invoices.view",
		title:   "Invoices",
		columns: invoiceColumns,
		help:    browseHelp,
		load:    invoiceRows,
	})
}

// NewInvoiceUpdate returns a picker that opens the edit form for an invoice.
func NewInvoiceUpdate() engine.Screen {
	return newListScreen(listSpec{
		name:    "invoices.update",
		title:   "Update Invoice",
		columns: invoiceColumns,
		help:    pickHelp,
		load:    invoiceRows,
		pick:    func(r row) engine.Outcome { return engine.Push(NewInvoiceEdit(r.id)) },
	})
}

// NewInvoiceEdit returns the edit form for invoice id.
func NewInvoiceEdit(id int64) engine.Screen {
	return newFormScreen(formSpec{
		name:      "invoices.edit",
		title:     fmt.Sprintf("Update Invoice %d", id),
		protected: true,
		fields:    invoiceFields,
		help:      formHelp,
		details:   patientName,
		load: func(ctx context.Context, env engine.Env, f *form) error {
			inv, err := env.Store.GetInvoice(ctx, id)
			if err != nil {
				return err
			}
			f.set(validate.FieldPatient, strconv.FormatInt(inv.PatientID, 10))
			f.set(validate.FieldItem, inv.Item)
			f.set(validate.FieldQuantity, strconv.FormatInt(inv.Quantity, 10))
			f.set(validate.FieldCost, strconv.FormatFloat(inv.Cost, 'f', -1, 64))
			return nil
		},
		submit: func(ctx context.Context, env engine.Env, f *form) (engine.Outcome, validate.Errors, error) {
			inv, errs, err := env.Rules.Invoice(ctx, invoiceInput(f))
			if err != nil || !errs.OK() {
				return engine.Outcome{}, errs, err
			}
			inv.ID = id
			if err := env.Store.UpdateInvoice(ctx, inv); err != nil {
				return engine.Outcome{}, nil, err
			}
			return engine.Pop().WithNotice(fmt.Sprintf("Invoice %d updated.", id)), nil, nil
		},
	})
}

// NewInvoiceDelete returns a picker that deletes an invoice after confirmation.
func NewInvoiceDelete() engine.Screen {
	return newListScreen(listSpec{
		name:    "invoices.delete",
		title:   "Delete Invoice",
		columns: invoiceColumns,
		help:    pickHelp,
		load:    invoiceRows,
		noun:    "invoice",
		remove: func(ctx context.Context, env engine.Env, id int64) error {
			return env.Store.DeleteInvoice(ctx, id)
		},
	})
}
