package driven

import (
	"context"

	"github.com/custodia-labs/scopegen/internal/core/domain"
)

// IntakeReader parses an intake workbook into agreement metadata and
// equipment rows.
type IntakeReader interface {
	// Parse reads the intake from raw workbook bytes.
	// Missing sheets or header rows yield empty collections, not errors.
	// Returns domain.ErrInvalidIntake if data is not a readable workbook.
	Parse(ctx context.Context, data []byte) (*domain.Intake, error)
}
