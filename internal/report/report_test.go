package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"id_validator/internal/domain"
	"id_validator/pkg/idnum"
)

func sampleResults() []domain.ValidationResult {
	return []domain.ValidationResult{
		{Identifier: "234567890124", Type: idnum.TypeAadhaar, Valid: true},
		{Identifier: "999999999999", Type: idnum.TypeAadhaar, Valid: true, Flags: []idnum.FraudFlag{idnum.FlagRepeatedDigits}},
		{Identifier: "abc", Type: idnum.TypeUnrecognized, Valid: false, Flags: []idnum.FraudFlag{idnum.FlagUnrecognizedFormat}},
	}
}

func TestBuild_RowsAndSummary(t *testing.T) {
	report := Build(sampleResults())

	if len(report.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(report.Rows))
	}
	if report.Rows[0].Valid != "Yes" || report.Rows[0].Flags != "-" {
		t.Errorf("unexpected first row: %+v", report.Rows[0])
	}
	if report.Rows[1].Flags != "repeated_digits" {
		t.Errorf("unexpected flags cell: %q", report.Rows[1].Flags)
	}
	if report.Rows[2].Valid != "No" {
		t.Errorf("unexpected third row: %+v", report.Rows[2])
	}

	s := report.Summary
	if s.Total != 3 || s.Valid != 2 || s.Invalid != 1 || s.Flagged != 2 {
		t.Errorf("unexpected summary: %+v", s)
	}
}

func TestCSVExporter(t *testing.T) {
	var buf bytes.Buffer
	exporter := &CSVExporter{}

	if err := exporter.Export(&buf, Build(sampleResults())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d records", len(records))
	}
	if records[0][0] != "ID Number" || records[0][3] != "Flags" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "234567890124" || records[1][2] != "Yes" {
		t.Errorf("unexpected row: %v", records[1])
	}
}

func TestTableExporter(t *testing.T) {
	var buf bytes.Buffer
	exporter := &TableExporter{}

	if err := exporter.Export(&buf, Build(sampleResults())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "ID Number") {
		t.Errorf("expected column header in output:\n%s", out)
	}
	if !strings.Contains(out, "Total: 3  Valid: 2  Invalid: 1  Flagged: 2") {
		t.Errorf("expected summary line in output:\n%s", out)
	}
}

func TestPDFExporter(t *testing.T) {
	var buf bytes.Buffer
	exporter := &PDFExporter{}

	if err := exporter.Export(&buf, Build(sampleResults())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("expected output to start with the PDF magic bytes")
	}
}

func TestExporterFormats(t *testing.T) {
	exporters := []Exporter{&CSVExporter{}, &TableExporter{}, &PDFExporter{}}
	want := []string{"csv", "table", "pdf"}

	for i, e := range exporters {
		if e.Format() != want[i] {
			t.Errorf("expected format %s, got %s", want[i], e.Format())
		}
	}
}
