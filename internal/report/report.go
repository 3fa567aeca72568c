package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/roach88/ward/internal/model"
)

// Source is the read side of the store the exporter needs.
// *store.Store satisfies it.
type Source interface {
	ListPatients(ctx context.Context) ([]model.Patient, error)
	ListStaff(ctx context.Context) ([]model.Staff, error)
	ListShifts(ctx context.Context) ([]model.Shift, error)
	ListMedicalRecords(ctx context.Context) ([]model.MedicalRecord, error)
	ListInvoices(ctx context.Context) ([]model.Invoice, error)
}

// Sheet names in workbook order.
const (
	SheetPatients = "Patients"
	SheetStaff    = "Staff"
	SheetShifts   = "Shifts"
	SheetRecords  = "Medical Records"
	SheetInvoices = "Invoices"
)

// Summary reports what an export wrote.
type Summary struct {
	Path string

	// Rows counts data rows (excluding headers) per sheet.
	Rows map[string]int
}

// Total is the number of data rows across all sheets.
func (s Summary) Total() int {
	n := 0
	for _, v := range s.Rows {
		n += v
	}
	return n
}

type sheet struct {
	name    string
	headers []string
	widths  []float64
	rows    [][]any
}

// Export writes every table to an XLSX workbook at path, one sheet per
// entity, with a bold frozen header row.
func Export(ctx context.Context, src Source, path string) (Summary, error) {
	sheets, err := collect(ctx, src)
	if err != nil {
		return Summary{}, err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return Summary{}, fmt.Errorf("create header style: %w", err)
	}

	summary := Summary{Path: path, Rows: make(map[string]int, len(sheets))}
	for _, sh := range sheets {
		if _, err := f.NewSheet(sh.name); err != nil {
			return Summary{}, fmt.Errorf("create sheet %s: %w", sh.name, err)
		}
		if err := writeSheet(f, sh, headerStyle); err != nil {
			return Summary{}, fmt.Errorf("write sheet %s: %w", sh.name, err)
		}
		summary.Rows[sh.name] = len(sh.rows)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return Summary{}, fmt.Errorf("save workbook %s: %w", path, err)
	}
	return summary, nil
}

func writeSheet(f *excelize.File, sh sheet, headerStyle int) error {
	for col, header := range sh.headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sh.name, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sh.name, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for i, w := range sh.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sh.name, col, col, w); err != nil {
			return err
		}
	}

	for i, r := range sh.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sh.name, cell, &r); err != nil {
			return err
		}
	}

	return f.SetPanes(sh.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func collect(ctx context.Context, src Source) ([]sheet, error) {
	patients, err := src.ListPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("export patients: %w", err)
	}
	staff, err := src.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("export staff: %w", err)
	}
	shifts, err := src.ListShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("export shifts: %w", err)
	}
	records, err := src.ListMedicalRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("export medical records: %w", err)
	}
	invoices, err := src.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("export invoices: %w", err)
	}

	ps := sheet{
		name: SheetPatients,
		headers: []string{"ID", "First Name", "Last Name", "Date of Birth", "Gender", "Address",
			"Phone", "Email", "Medical History", "Allergies", "Current Medications"},
		widths: []float64{6, 16, 16, 14, 10, 28, 16, 24, 30, 20, 24},
	}
	for _, p := range patients {
		ps.rows = append(ps.rows, []any{p.ID, p.FirstName, p.LastName, p.DateOfBirth, string(p.Gender),
			p.Address, p.PhoneNumber, model.Deref(p.Email), model.Deref(p.MedicalHistory),
			model.Deref(p.Allergies), model.Deref(p.CurrentMedications)})
	}

	ss := sheet{
		name:    SheetStaff,
		headers: []string{"ID", "Name", "Role", "Phone", "Email", "Address"},
		widths:  []float64{6, 24, 12, 16, 24, 28},
	}
	for _, m := range staff {
		ss.rows = append(ss.rows, []any{m.ID, m.Name, string(m.Role), m.PhoneNumber, model.Deref(m.Email), m.Address})
	}

	sh := sheet{
		name:    SheetShifts,
		headers: []string{"ID", "Staff ID", "Date", "Shift"},
		widths:  []float64{6, 10, 14, 12},
	}
	for _, s := range shifts {
		sh.rows = append(sh.rows, []any{s.ID, s.StaffID, s.Date, string(s.Label)})
	}

	rs := sheet{
		name:    SheetRecords,
		headers: []string{"ID", "Patient ID", "Doctor Notes", "Nurse Notes", "Diagnosis", "Prescription"},
		widths:  []float64{6, 10, 36, 36, 24, 24},
	}
	for _, r := range records {
		rs.rows = append(rs.rows, []any{r.ID, r.PatientID, r.DoctorNotes, model.Deref(r.NurseNotes),
			r.Diagnosis, model.Deref(r.Prescription)})
	}

	is := sheet{
		name:    SheetInvoices,
		headers: []string{"ID", "Patient ID", "Item", "Quantity", "Unit Cost", "Total"},
		widths:  []float64{6, 10, 24, 10, 12, 12},
	}
	for _, inv := range invoices {
		is.rows = append(is.rows, []any{inv.ID, inv.PatientID, inv.Item, inv.Quantity, inv.Cost, inv.Total()})
	}

	return []sheet{ps, ss, sh, rs, is}, nil
}
