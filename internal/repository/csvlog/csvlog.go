package csvlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"id_validator/internal/domain"
	"id_validator/internal/repository"
)

var _ repository.AttemptLog = (*Logger)(nil)

// Logger appends one CSV row per validation attempt:
// timestamp, identifier, type, valid, semicolon-joined flags, signature.
type Logger struct {
	mu   sync.Mutex
	path string
}

func NewLogger(path string) *Logger {
	return &Logger{path: path}
}

func (l *Logger) Append(attempt *domain.Attempt) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open attempt log: %w", err)
	}
	defer f.Close()

	flags := make([]string, 0, len(attempt.Flags))
	for _, flag := range attempt.Flags {
		flags = append(flags, string(flag))
	}

	w := csv.NewWriter(f)
	record := []string{
		attempt.CreatedAt.Format(time.RFC3339),
		attempt.Identifier,
		string(attempt.Type),
		strconv.FormatBool(attempt.Valid),
		strings.Join(flags, ";"),
		attempt.Signature,
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("failed to write attempt record: %w", err)
	}

	w.Flush()
	return w.Error()
}
