package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

type CSVExporter struct{}

func (e *CSVExporter) Format() string { return "csv" }

func (e *CSVExporter) ContentType() string { return "text/csv" }

func (e *CSVExporter) Export(w io.Writer, report *Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range report.Rows {
		if err := cw.Write([]string{row.Identifier, row.Type, row.Valid, row.Flags}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
