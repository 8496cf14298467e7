package report

import (
	"io"
	"strings"
	"time"

	"id_validator/internal/domain"
)

// Exporter renders a built report to a writer. Implementations are injected
// into the API layer so the rendering backend stays swappable.
type Exporter interface {
	Format() string
	ContentType() string
	Export(w io.Writer, report *Report) error
}

type Report struct {
	GeneratedAt time.Time
	Rows        []Row
	Summary     Summary
}

type Row struct {
	Identifier string
	Type       string
	Valid      string
	Flags      string
}

type Summary struct {
	Total   int
	Valid   int
	Invalid int
	Flagged int
}

var columns = []string{"ID Number", "Type", "Valid", "Flags"}

// Build converts a result sequence into report rows, preserving order.
func Build(results []domain.ValidationResult) *Report {
	report := &Report{
		GeneratedAt: time.Now(),
		Rows:        make([]Row, 0, len(results)),
	}

	for _, result := range results {
		valid := "No"
		if result.Valid {
			valid = "Yes"
		}

		flags := make([]string, 0, len(result.Flags))
		for _, flag := range result.Flags {
			flags = append(flags, string(flag))
		}
		flagCell := "-"
		if len(flags) > 0 {
			flagCell = strings.Join(flags, ", ")
		}

		report.Rows = append(report.Rows, Row{
			Identifier: result.Identifier,
			Type:       string(result.Type),
			Valid:      valid,
			Flags:      flagCell,
		})

		report.Summary.Total++
		if result.Valid {
			report.Summary.Valid++
		} else {
			report.Summary.Invalid++
		}
		if len(result.Flags) > 0 {
			report.Summary.Flagged++
		}
	}

	return report
}
