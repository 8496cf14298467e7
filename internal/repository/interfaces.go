package repository

import (
	"context"
	"errors"
	"time"

	"id_validator/internal/domain"
	"id_validator/pkg/idnum"
)

type AttemptRepository interface {
	Save(ctx context.Context, attempt *domain.Attempt) error
	GetByID(ctx context.Context, id string) (*domain.Attempt, error)
	GetRecent(ctx context.Context, limit int) ([]*domain.Attempt, error)
	GetByType(ctx context.Context, t idnum.Type) ([]*domain.Attempt, error)
	GetByPeriod(ctx context.Context, from, to time.Time) ([]*domain.Attempt, error)
	CountByValidity(ctx context.Context) (valid int, invalid int, err error)
}

// AttemptLog is the append-only audit sink; it never reads back.
type AttemptLog interface {
	Append(attempt *domain.Attempt) error
}

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate entry")
)
