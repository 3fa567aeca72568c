package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/ward/internal/engine"
	"github.com/roach88/ward/internal/report"
	"github.com/roach88/ward/internal/validate"
)

// DefaultReportPath is pre-filled in the export form.
const DefaultReportPath = "ward-report.xlsx"

const fieldReportPath = "path"

// NewReportExport returns the form that writes every table to an xlsx workbook.
func NewReportExport() engine.Screen {
	return newFormScreen(formSpec{
		name:      "reports.export",
		title:     "Export Reports",
		protected: true,
		fields: func() []*field {
			return []*field{text(fieldReportPath, "Output file (.xlsx)")}
		},
		help: formHelp,
		load: func(_ context.Context, _ engine.Env, f *form) error {
			f.set(fieldReportPath, DefaultReportPath)
			return nil
		},
		submit: func(ctx context.Context, env engine.Env, f *form) (engine.Outcome, validate.Errors, error) {
			path := strings.TrimSpace(f.value(fieldReportPath))
			if path == "" {
				return engine.Outcome{}, validate.Errors{fieldReportPath: "is required"}, nil
			}
			sum, err := report.Export(ctx, env.Store, path)
			if err != nil {
				return engine.Outcome{}, nil, err
			}
			return engine.Pop().WithNotice(fmt.Sprintf("Exported %d rows to %s.", sum.Total(), sum.Path)), nil, nil
		},
	})
}
