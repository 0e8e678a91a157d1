package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/scopegen/internal/core/domain"
	"github.com/custodia-labs/scopegen/internal/core/ports/driven"
	"github.com/custodia-labs/scopegen/internal/core/ports/driving"
	"github.com/custodia-labs/scopegen/internal/logger"
)

// Ensure AgreementService implements the interface.
var _ driving.AgreementService = (*AgreementService)(nil)

// AgreementOptions carries the document defaults used when a request leaves
// them unset.
type AgreementOptions struct {
	DefaultPropertyName string
	Alphabetize         bool
	FontName            string
	FontSize            float64
}

// AgreementService turns intake workbooks into rendered PM agreements.
type AgreementService struct {
	reader    driven.IntakeReader
	renderer  driven.DocumentRenderer
	allocator *VersionAllocator
	history   driven.GenerationLog // optional
	opts      AgreementOptions
	now       func() time.Time
}

// NewAgreementService creates a new agreement service. history may be nil.
func NewAgreementService(
	reader driven.IntakeReader,
	renderer driven.DocumentRenderer,
	allocator *VersionAllocator,
	history driven.GenerationLog,
	opts AgreementOptions,
) *AgreementService {
	if opts.DefaultPropertyName == "" {
		opts.DefaultPropertyName = domain.DefaultAppSettings().DefaultPropertyName
	}
	return &AgreementService{
		reader:    reader,
		renderer:  renderer,
		allocator: allocator,
		history:   history,
		opts:      opts,
		now:       time.Now,
	}
}

// Generate parses the intake, renders the agreement, and only then allocates
// the versioned filename, so a failed render never consumes a revision.
func (s *AgreementService) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.GenerateResult, error) {
	logger.Section("Generate")

	intake, err := s.reader.Parse(ctx, req.Intake)
	if err != nil {
		return nil, domain.NewStageError(domain.StageParse, err)
	}
	logger.Debug("intake parsed: %d agreement fields, %d equipment rows",
		len(intake.Agreement), len(intake.Equipment))

	property := req.PropertyName
	if property == "" {
		property = s.opts.DefaultPropertyName
	}

	sel := SelectScopes(intake.Equipment, s.alphabetize(req.Alphabetize))
	logger.Debug("present equipment: %v", sel.Present)
	logger.Debug("selected %d general clauses, %d equipment scopes", len(sel.General), len(sel.Equipment))

	start, end := AgreementDates(intake.Agreement)
	doc := Assemble(intake.Agreement, sel, AssembleOptions{
		Title:    BaseName(property, start, end),
		FontName: s.opts.FontName,
		FontSize: s.opts.FontSize,
	})

	content, err := s.renderer.Render(doc)
	if err != nil {
		return nil, domain.NewStageError(domain.StageRender, fmt.Errorf("%w: %w", domain.ErrRender, err))
	}

	alloc, err := s.allocator.Allocate(ctx, property, start, end)
	if err != nil {
		return nil, domain.NewStageError(domain.StageVersion, err)
	}
	logger.Info("generated %s (%d bytes)", alloc.Filename, len(content))

	result := &domain.GenerateResult{
		ID:       uuid.New().String(),
		Filename: alloc.Filename,
		BaseName: alloc.BaseName,
		Version:  alloc.Revision,
		Content:  content,
		Document: doc,
		Intake:   intake,
		Scope:    sel,
	}

	s.record(ctx, property, result)
	return result, nil
}

// record appends to the generation history. Failures are logged, not
// returned: the agreement and its revision already exist.
func (s *AgreementService) record(ctx context.Context, property string, result *domain.GenerateResult) {
	if s.history == nil {
		return
	}
	rec := domain.GenerationRecord{
		ID:             result.ID,
		PropertyName:   property,
		BaseName:       result.BaseName,
		Version:        result.Version,
		Filename:       result.Filename,
		EquipmentCount: len(result.Intake.Equipment),
		CreatedAt:      s.now().UTC(),
	}
	if err := s.history.Append(ctx, rec); err != nil {
		logger.Warn("recording generation history: %v", err)
	}
}

// Preview parses the intake and selects scopes without touching the tracker.
func (s *AgreementService) Preview(ctx context.Context, req domain.GenerateRequest) (*domain.Preview, error) {
	intake, err := s.reader.Parse(ctx, req.Intake)
	if err != nil {
		return nil, domain.NewStageError(domain.StageParse, err)
	}

	property := req.PropertyName
	if property == "" {
		property = s.opts.DefaultPropertyName
	}
	freq := domain.ParseFrequency(intake.Agreement.Frequency())
	start, end := AgreementDates(intake.Agreement)

	return &domain.Preview{
		Intake:    intake,
		Frequency: freq.String(),
		Visits:    freq.Visits(),
		Billing:   freq.Billing(),
		Fraction:  freq.Fraction(),
		BaseName:  BaseName(property, start, end),
		Scope:     SelectScopes(intake.Equipment, s.alphabetize(req.Alphabetize)),
	}, nil
}

// Versions returns a snapshot of the version tracker.
func (s *AgreementService) Versions(_ context.Context) (map[string]int, error) {
	return s.allocator.Snapshot(), nil
}

// History returns recent generation records, newest first.
func (s *AgreementService) History(ctx context.Context, limit int) ([]domain.GenerationRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	records, err := s.history.Recent(ctx, limit)
	if err != nil {
		return nil, domain.NewStageError(domain.StageHistory, err)
	}
	return records, nil
}

func (s *AgreementService) alphabetize(override *bool) bool {
	if override != nil {
		return *override
	}
	return s.opts.Alphabetize
}
