package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/scopegen/internal/core/domain"
	"github.com/custodia-labs/scopegen/internal/core/ports/driven"
)

// Ensure GenerationLog implements the interface.
var _ driven.GenerationLog = (*GenerationLog)(nil)

// GenerationLog is an in-memory implementation of driven.GenerationLog.
type GenerationLog struct {
	mu      sync.RWMutex
	records []domain.GenerationRecord
}

// NewGenerationLog creates an empty generation log.
func NewGenerationLog() *GenerationLog {
	return &GenerationLog{}
}

// Append records a generation.
func (l *GenerationLog) Append(_ context.Context, rec domain.GenerationRecord) error {
	if rec.ID == "" {
		return domain.ErrInvalidInput
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
	return nil
}

// Recent returns up to limit records, newest first. A limit of zero or
// less returns every record.
func (l *GenerationLog) Recent(_ context.Context, limit int) ([]domain.GenerationRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := len(l.records)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]domain.GenerationRecord, 0, limit)
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, l.records[i])
	}
	return out, nil
}
