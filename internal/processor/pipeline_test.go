package processor

import (
	"context"
	"reflect"
	"testing"

	"id_validator/internal/domain"
	"id_validator/internal/repository/memory"
	"id_validator/pkg/idnum"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"234567890124, 4539148803436467", []string{"234567890124", "4539148803436467"}},
		{"a\nb\n\nc", []string{"a", "b", "c"}},
		{"  x  ,\n  y  ", []string{"x", "y"}},
		{",,\n,", nil},
		{"", nil},
	}

	for _, c := range cases {
		if got := Tokenize(c.raw); !reflect.DeepEqual(got, c.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestValidationPipeline_ProcessBatch(t *testing.T) {
	ctx := context.Background()
	pipeline := NewValidationPipeline(memory.NewAttemptRepository(), nil, nil, nil, nil)

	results, err := pipeline.ProcessBatch(ctx, []string{"234567890124", "27AAPFU0939F1ZV", "490154203237518", "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	if results[0].Type != idnum.TypeAadhaar || !results[0].Valid {
		t.Errorf("expected valid Aadhaar, got %+v", results[0])
	}
	if results[1].Type != idnum.TypeGSTIN || !results[1].Valid {
		t.Errorf("expected valid GSTIN, got %+v", results[1])
	}
	if results[2].Type != idnum.TypeIMEI || !results[2].Valid {
		t.Errorf("expected valid IMEI, got %+v", results[2])
	}
	if results[3].Type != idnum.TypeUnrecognized || results[3].Valid {
		t.Errorf("expected invalid Unrecognized, got %+v", results[3])
	}
	if len(results[3].Flags) != 1 || results[3].Flags[0] != idnum.FlagUnrecognizedFormat {
		t.Errorf("expected [unrecognized_format] exactly, got %v", results[3].Flags)
	}
}

func TestValidationPipeline_OrderPreserved(t *testing.T) {
	ctx := context.Background()
	pipeline := NewValidationPipeline(memory.NewAttemptRepository(), nil, nil, nil, nil)

	tokens := []string{"abc", "234567890124", "4539148803436467"}
	results, err := pipeline.ProcessBatch(ctx, tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, token := range tokens {
		if results[i].Identifier != token {
			t.Errorf("position %d: expected %s, got %s", i, token, results[i].Identifier)
		}
	}
}

func TestValidationPipeline_Idempotent(t *testing.T) {
	ctx := context.Background()
	tokens := []string{"999999999999", "123456789012345", "abc"}

	pipeline := NewValidationPipeline(memory.NewAttemptRepository(), nil, nil, nil, nil)
	first, err := pipeline.ProcessBatch(ctx, tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := pipeline.ProcessBatch(ctx, tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical result sequences, got %+v then %+v", first, second)
	}
}

func TestValidationPipeline_FifteenDigitsRouteToLuhn(t *testing.T) {
	ctx := context.Background()
	pipeline := NewValidationPipeline(memory.NewAttemptRepository(), nil, nil, nil, nil)

	results, err := pipeline.ProcessBatch(ctx, []string{"123456789012345"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Type != idnum.TypeIMEI {
		t.Errorf("expected IMEI, got %s", results[0].Type)
	}
	if results[0].Valid {
		t.Error("expected Luhn failure for 123456789012345")
	}
}

func TestValidationPipeline_FlaggedButChecksumValid(t *testing.T) {
	ctx := context.Background()
	pipeline := NewValidationPipeline(memory.NewAttemptRepository(), nil, nil, nil, nil)

	results, err := pipeline.ProcessBatch(ctx, []string{"999999999999"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !results[0].Valid {
		t.Error("expected checksum-valid result")
	}
	if len(results[0].Flags) != 1 || results[0].Flags[0] != idnum.FlagRepeatedDigits {
		t.Errorf("expected advisory repeated_digits flag, got %v", results[0].Flags)
	}
}

func TestValidationPipeline_PersistsAttempts(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAttemptRepository()
	pipeline := NewValidationPipeline(repo, nil, nil, nil, nil)

	_, err := pipeline.ProcessBatch(ctx, []string{"234567890124", "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	attempts, err := repo.GetRecent(ctx, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].Identifier != "234567890124" || attempts[1].Identifier != "abc" {
		t.Errorf("attempts out of order: %+v", attempts)
	}
}

type captureAlerter struct {
	attempts []*domain.Attempt
}

func (c *captureAlerter) SendFlagAlert(ctx context.Context, attempt *domain.Attempt) error {
	c.attempts = append(c.attempts, attempt)
	return nil
}

func TestValidationPipeline_AlertsOnFlaggedAttempts(t *testing.T) {
	ctx := context.Background()
	alerter := &captureAlerter{}
	pipeline := NewValidationPipeline(memory.NewAttemptRepository(), nil, nil, alerter, nil)

	_, err := pipeline.ProcessBatch(ctx, []string{"999999999999", "234567890124", "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only the recognized, flagged value alerts; clean and unrecognized
	// values do not.
	if len(alerter.attempts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerter.attempts))
	}
	if alerter.attempts[0].Identifier != "999999999999" {
		t.Errorf("unexpected alerted attempt: %+v", alerter.attempts[0])
	}
}
