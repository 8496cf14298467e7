package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// TableExporter renders the plain-text summary table.
type TableExporter struct{}

func (e *TableExporter) Format() string { return "table" }

func (e *TableExporter) ContentType() string { return "text/plain; charset=utf-8" }

func (e *TableExporter) Export(w io.Writer, report *Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", columns[0], columns[1], columns[2], columns[3])
	for _, row := range report.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Identifier, row.Type, row.Valid, row.Flags)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nTotal: %d  Valid: %d  Invalid: %d  Flagged: %d\n",
		report.Summary.Total, report.Summary.Valid, report.Summary.Invalid, report.Summary.Flagged)
	return err
}
