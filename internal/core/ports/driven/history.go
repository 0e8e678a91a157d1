package driven

import (
	"context"

	"github.com/custodia-labs/scopegen/internal/core/domain"
)

// GenerationLog records generated agreements.
type GenerationLog interface {
	// Append adds a record.
	Append(ctx context.Context, record domain.GenerationRecord) error

	// Recent returns up to limit records, newest first.
	// A limit of zero or less returns all records.
	Recent(ctx context.Context, limit int) ([]domain.GenerationRecord, error)
}
