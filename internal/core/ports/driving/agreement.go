package driving

import (
	"context"

	"github.com/custodia-labs/scopegen/internal/core/domain"
)

// AgreementService turns intake workbooks into PM agreements.
type AgreementService interface {
	// Generate parses the intake, assembles and renders the agreement, and
	// allocates the next versioned filename. Errors are *domain.StageError.
	Generate(ctx context.Context, req domain.GenerateRequest) (*domain.GenerateResult, error)

	// Preview parses the intake and selects scopes without allocating a
	// version.
	Preview(ctx context.Context, req domain.GenerateRequest) (*domain.Preview, error)

	// Versions returns a snapshot of the version tracker.
	Versions(ctx context.Context) (map[string]int, error)

	// History returns up to limit generation records, newest first.
	History(ctx context.Context, limit int) ([]domain.GenerationRecord, error)
}
