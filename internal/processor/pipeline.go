package processor

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"id_validator/internal/domain"
	"id_validator/internal/repository"
	"id_validator/pkg/crypto"
	"id_validator/pkg/idnum"
)

var tokenSplit = regexp.MustCompile(`[\n,]+`)

// Tokenize splits free text on commas and newlines into trimmed, non-empty
// tokens.
func Tokenize(raw string) []string {
	var tokens []string
	for _, part := range tokenSplit.Split(raw, -1) {
		token := strings.TrimSpace(part)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// FlagAlerter receives attempts that carry fraud flags.
type FlagAlerter interface {
	SendFlagAlert(ctx context.Context, attempt *domain.Attempt) error
}

type ValidationPipeline struct {
	attemptRepo repository.AttemptRepository
	attemptLog  repository.AttemptLog
	signer      *crypto.Signer
	alerter     FlagAlerter
	mu          sync.RWMutex
	metrics     map[string]int
	logger      *slog.Logger
}

func NewValidationPipeline(
	attemptRepo repository.AttemptRepository,
	attemptLog repository.AttemptLog,
	signer *crypto.Signer,
	alerter FlagAlerter,
	logger *slog.Logger,
) *ValidationPipeline {
	if logger == nil {
		logger = slog.Default()
	}

	return &ValidationPipeline{
		attemptRepo: attemptRepo,
		attemptLog:  attemptLog,
		signer:      signer,
		alerter:     alerter,
		metrics:     make(map[string]int),
		logger:      logger,
	}
}

// ProcessBatch validates each token and returns one result per token in
// input order. Unrecognized tokens short-circuit: no checksum and no
// heuristics run, the single unrecognized_format flag is synthesized instead.
func (p *ValidationPipeline) ProcessBatch(ctx context.Context, tokens []string) ([]domain.ValidationResult, error) {
	results := make([]domain.ValidationResult, 0, len(tokens))

	for _, token := range tokens {
		result := p.validateToken(token)
		results = append(results, result)

		if err := p.recordAttempt(ctx, result); err != nil {
			return nil, fmt.Errorf("failed to record attempt for %s: %w", token, err)
		}

		p.recordMetric("identifiers_processed", 1)
		if !result.Valid {
			p.recordMetric("identifiers_invalid", 1)
		}
	}

	return results, nil
}

// ProcessRaw tokenizes free text and validates the resulting tokens.
func (p *ValidationPipeline) ProcessRaw(ctx context.Context, raw string) ([]domain.ValidationResult, error) {
	return p.ProcessBatch(ctx, Tokenize(raw))
}

func (p *ValidationPipeline) GetAttempt(ctx context.Context, attemptID string) (*domain.Attempt, error) {
	return p.attemptRepo.GetByID(ctx, attemptID)
}

func (p *ValidationPipeline) GetRecentAttempts(ctx context.Context, limit int) ([]*domain.Attempt, error) {
	return p.attemptRepo.GetRecent(ctx, limit)
}

func (p *ValidationPipeline) GetMetrics() map[string]int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	snapshot := make(map[string]int, len(p.metrics))
	for k, v := range p.metrics {
		snapshot[k] = v
	}
	return snapshot
}

func (p *ValidationPipeline) validateToken(token string) domain.ValidationResult {
	idType := idnum.DetectType(token)

	if idType == idnum.TypeUnrecognized {
		return domain.ValidationResult{
			Identifier: token,
			Type:       idnum.TypeUnrecognized,
			Valid:      false,
			Flags:      []idnum.FraudFlag{idnum.FlagUnrecognizedFormat},
		}
	}

	return domain.ValidationResult{
		Identifier: token,
		Type:       idType,
		Valid:      idnum.Validate(token, idType),
		Flags:      idnum.FraudFlags(token, idType),
	}
}

func (p *ValidationPipeline) recordAttempt(ctx context.Context, result domain.ValidationResult) error {
	attempt := domain.NewAttempt(result)
	if p.signer != nil {
		attempt.Signature = p.signer.SignAttempt(
			attempt.Identifier, string(attempt.Type), attempt.Valid, attempt.CreatedAt.Unix())
	}

	if err := p.attemptRepo.Save(ctx, attempt); err != nil {
		return err
	}

	if p.attemptLog != nil {
		if err := p.attemptLog.Append(attempt); err != nil {
			p.logger.ErrorContext(ctx, "Failed to append attempt log",
				slog.String("attempt_id", attempt.ID),
				slog.String("error", err.Error()))
		}
	}

	if p.alerter != nil && result.Type != idnum.TypeUnrecognized && len(result.Flags) > 0 {
		if err := p.alerter.SendFlagAlert(ctx, attempt); err != nil {
			p.logger.WarnContext(ctx, "Failed to send flag alert",
				slog.String("attempt_id", attempt.ID),
				slog.String("error", err.Error()))
		}
	}

	p.logger.InfoContext(ctx, "Identifier processed",
		slog.String("attempt_id", attempt.ID),
		slog.String("type", string(attempt.Type)),
		slog.Bool("valid", attempt.Valid),
		slog.Int("flags", len(attempt.Flags)))

	return nil
}

func (p *ValidationPipeline) recordMetric(key string, value int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.metrics[key] += value
}
