package report

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders the report as an A4 PDF with a centered title and a
// bordered four-column table.
type PDFExporter struct{}

func (e *PDFExporter) Format() string { return "pdf" }

func (e *PDFExporter) ContentType() string { return "application/pdf" }

func (e *PDFExporter) Export(w io.Writer, report *Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 10, "Validation Report", "", 1, "C", false, 0, "")
		pdf.Ln(5)
	})
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 10)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	epw := pageWidth - left - right
	widths := []float64{epw * 0.3, epw * 0.2, epw * 0.15, epw * 0.35}

	pdf.SetFillColor(0, 51, 102)
	pdf.SetTextColor(255, 255, 255)
	for i, column := range columns {
		pdf.CellFormat(widths[i], 8, column, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	for _, row := range report.Rows {
		pdf.CellFormat(widths[0], 6, row.Identifier, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[1], 6, row.Type, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[2], 6, row.Valid, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, row.Flags, "1", 0, "", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
