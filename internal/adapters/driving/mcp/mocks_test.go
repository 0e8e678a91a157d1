package mcp

import (
	"context"

	"github.com/custodia-labs/scopegen/internal/core/domain"
)

// mockAgreementService is a mock implementation of driving.AgreementService.
type mockAgreementService struct {
	result   *domain.GenerateResult
	preview  *domain.Preview
	versions map[string]int
	history  []domain.GenerationRecord
	err      error

	lastRequest domain.GenerateRequest
	lastLimit   int
}

func (m *mockAgreementService) Generate(_ context.Context, req domain.GenerateRequest) (*domain.GenerateResult, error) {
	m.lastRequest = req
	return m.result, m.err
}

func (m *mockAgreementService) Preview(_ context.Context, req domain.GenerateRequest) (*domain.Preview, error) {
	m.lastRequest = req
	return m.preview, m.err
}

func (m *mockAgreementService) Versions(_ context.Context) (map[string]int, error) {
	return m.versions, m.err
}

func (m *mockAgreementService) History(_ context.Context, limit int) ([]domain.GenerationRecord, error) {
	m.lastLimit = limit
	return m.history, m.err
}
