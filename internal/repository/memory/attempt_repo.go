package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"id_validator/internal/domain"
	"id_validator/internal/repository"
	"id_validator/pkg/idnum"
)

type AttemptRepository struct {
	mu       sync.RWMutex
	attempts map[string]*domain.Attempt
	order    []string
}

func NewAttemptRepository() *AttemptRepository {
	return &AttemptRepository{
		attempts: make(map[string]*domain.Attempt),
	}
}

func (r *AttemptRepository) Save(ctx context.Context, attempt *domain.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.attempts[attempt.ID]; exists {
		return fmt.Errorf("%w: attempt %s", repository.ErrDuplicate, attempt.ID)
	}

	r.attempts[attempt.ID] = attempt
	r.order = append(r.order, attempt.ID)

	return nil
}

func (r *AttemptRepository) GetByID(ctx context.Context, id string) (*domain.Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	attempt, exists := r.attempts[id]
	if !exists {
		return nil, fmt.Errorf("%w: attempt %s", repository.ErrNotFound, id)
	}
	return attempt, nil
}

func (r *AttemptRepository) GetRecent(ctx context.Context, limit int) ([]*domain.Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := len(r.order) - limit
	if limit <= 0 || start < 0 {
		start = 0
	}

	var result []*domain.Attempt
	for _, id := range r.order[start:] {
		result = append(result, r.attempts[id])
	}

	return result, nil
}

func (r *AttemptRepository) GetByType(ctx context.Context, t idnum.Type) ([]*domain.Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Attempt
	for _, id := range r.order {
		if attempt := r.attempts[id]; attempt.Type == t {
			result = append(result, attempt)
		}
	}

	return result, nil
}

func (r *AttemptRepository) GetByPeriod(ctx context.Context, from, to time.Time) ([]*domain.Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Attempt
	for _, attempt := range r.attempts {
		if !attempt.CreatedAt.Before(from) && !attempt.CreatedAt.After(to) {
			result = append(result, attempt)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *AttemptRepository) CountByValidity(ctx context.Context) (int, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var valid, invalid int
	for _, attempt := range r.attempts {
		if attempt.Valid {
			valid++
		} else {
			invalid++
		}
	}

	return valid, invalid, nil
}
