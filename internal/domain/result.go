package domain

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"id_validator/pkg/idnum"
)

type ValidationResult struct {
	Identifier string            `json:"identifier"`
	Type       idnum.Type        `json:"type"`
	Valid      bool              `json:"valid"`
	Flags      []idnum.FraudFlag `json:"flags,omitempty"`
}

type Attempt struct {
	ID         string            `json:"id"`
	Identifier string            `json:"identifier"`
	Type       idnum.Type        `json:"type"`
	Valid      bool              `json:"valid"`
	Flags      []idnum.FraudFlag `json:"flags,omitempty"`
	Signature  string            `json:"signature,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

func NewAttempt(result ValidationResult) *Attempt {
	return &Attempt{
		ID:         generateAttemptID(),
		Identifier: result.Identifier,
		Type:       result.Type,
		Valid:      result.Valid,
		Flags:      result.Flags,
		CreatedAt:  time.Now(),
	}
}

func (a *Attempt) Result() ValidationResult {
	return ValidationResult{
		Identifier: a.Identifier,
		Type:       a.Type,
		Valid:      a.Valid,
		Flags:      a.Flags,
	}
}

func generateAttemptID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
