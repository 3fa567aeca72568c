package store

import (
	"context"
	"fmt"

	"github.com/roach88/ward/internal/model"
)

// CreateInvoice inserts an invoice line and returns the assigned id.
func (s *Store) CreateInvoice(ctx context.Context, inv model.Invoice) (int64, error) {
	return s.insert(ctx, "create invoice", "invoices", `
		INSERT INTO invoices (patient_id, item, quantity, cost) VALUES (?, ?, ?, ?)
	`, inv.PatientID, inv.Item, inv.Quantity, inv.Cost)
}

// GetInvoice returns the invoice with the given id.
func (s *Store) GetInvoice(ctx context.Context, id int64) (model.Invoice, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, patient_id, item, quantity, cost FROM invoices WHERE id = ?
	`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		return model.Invoice{}, notFound("get invoice", id, err)
	}
	return inv, nil
}

// ListInvoices returns every invoice ordered by id.
func (s *Store) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, patient_id, item, quantity, cost FROM invoices ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	return collect(rows, "invoices", scanInvoice)
}

// UpdateInvoice overwrites an existing invoice.
func (s *Store) UpdateInvoice(ctx context.Context, inv model.Invoice) error {
	return s.execOne(ctx, "update invoice", "invoices", inv.ID, `
		UPDATE invoices SET patient_id = ?, item = ?, quantity = ?, cost = ? WHERE id = ?
	`, inv.PatientID, inv.Item, inv.Quantity, inv.Cost, inv.ID)
}

// DeleteInvoice removes an invoice.
func (s *Store) DeleteInvoice(ctx context.Context, id int64) error {
	return s.execOne(ctx, "delete invoice", "invoices", id, `DELETE FROM invoices WHERE id = ?`, id)
}

func scanInvoice(row scanner) (model.Invoice, error) {
	var inv model.Invoice
	err := row.Scan(&inv.ID, &inv.PatientID, &inv.Item, &inv.Quantity, &inv.Cost)
	return inv, err
}
