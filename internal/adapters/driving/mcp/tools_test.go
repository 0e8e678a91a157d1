package mcp

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scopegen/internal/core/domain"
)

func TestServer_handleGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the agreement to the output dir", func(t *testing.T) {
		dir := t.TempDir()
		mock := &mockAgreementService{result: &domain.GenerateResult{
			ID:       "gen-1",
			Filename: "Acme - PM Agreement - 2025-2025 - V1.0.docx",
			BaseName: "Acme - PM Agreement - 2025-2025",
			Content:  []byte("docx-bytes"),
			Scope:    domain.ScopeSelection{Present: []string{"Air Handler"}},
		}}
		server, err := NewServer(&Ports{Agreement: mock, OutputDir: dir})
		require.NoError(t, err)

		alpha := false
		input := IntakeInput{
			IntakeBase64: base64.StdEncoding.EncodeToString([]byte("xlsx")),
			PropertyName: "Acme",
			Alphabetize:  &alpha,
		}
		_, output, err := server.handleGenerate(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "gen-1", output.ID)
		assert.Equal(t, 0, output.Version)
		assert.Equal(t, len("docx-bytes"), output.Bytes)
		assert.Equal(t, []string{"Air Handler"}, output.EquipmentPresent)
		assert.Equal(t, filepath.Join(dir, "Acme - PM Agreement - 2025-2025 - V1.0.docx"), output.Path)

		saved, err := os.ReadFile(output.Path)
		require.NoError(t, err)
		assert.Equal(t, "docx-bytes", string(saved))

		assert.Equal(t, []byte("xlsx"), mock.lastRequest.Intake)
		assert.Equal(t, "Acme", mock.lastRequest.PropertyName)
		require.NotNil(t, mock.lastRequest.Alphabetize)
		assert.False(t, *mock.lastRequest.Alphabetize)
	})

	t.Run("reads intake from path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "intake.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("from-disk"), 0o644))

		mock := &mockAgreementService{result: &domain.GenerateResult{Filename: "x.docx"}}
		server, err := NewServer(&Ports{Agreement: mock, OutputDir: dir})
		require.NoError(t, err)

		_, output, err := server.handleGenerate(ctx, nil, IntakeInput{IntakePath: path})

		require.NoError(t, err)
		assert.Equal(t, []byte("from-disk"), mock.lastRequest.Intake)
		assert.Equal(t, []string{}, output.EquipmentPresent)
	})

	t.Run("no intake", func(t *testing.T) {
		server, err := NewServer(&Ports{Agreement: &mockAgreementService{}})
		require.NoError(t, err)

		_, _, err = server.handleGenerate(ctx, nil, IntakeInput{})
		assert.ErrorIs(t, err, ErrNoIntake)
	})

	t.Run("bad base64", func(t *testing.T) {
		server, err := NewServer(&Ports{Agreement: &mockAgreementService{}})
		require.NoError(t, err)

		_, _, err = server.handleGenerate(ctx, nil, IntakeInput{IntakeBase64: "!!!"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("service error is returned", func(t *testing.T) {
		boom := domain.NewStageError(domain.StageParse, domain.ErrInvalidIntake)
		server, err := NewServer(&Ports{Agreement: &mockAgreementService{err: boom}})
		require.NoError(t, err)

		_, _, err = server.handleGenerate(ctx, nil, IntakeInput{IntakeBase64: "eA=="})
		assert.ErrorIs(t, err, domain.ErrInvalidIntake)
	})
}

func TestServer_handlePreview(t *testing.T) {
	ctx := context.Background()

	t.Run("summarises the preview", func(t *testing.T) {
		mock := &mockAgreementService{preview: &domain.Preview{
			Intake: &domain.Intake{
				Agreement: domain.AgreementMetadata{domain.FieldFrequency: "Annual"},
				Equipment: []domain.EquipmentRow{{domain.FieldEquipmentType: "Boiler"}},
			},
			Frequency: "annual",
			Visits:    "one (1) annual service per year",
			BaseName:  "Acme - PM Agreement - XXXX-XXXX",
			Scope: domain.ScopeSelection{
				Present:   []string{"Boilers"},
				General:   []string{"Clause"},
				Equipment: []domain.EquipmentScope{{Name: "Boilers", Header: "Boilers:"}},
			},
		}}
		server, err := NewServer(&Ports{Agreement: mock})
		require.NoError(t, err)

		_, output, err := server.handlePreview(ctx, nil, IntakeInput{IntakeBase64: "eA=="})

		require.NoError(t, err)
		assert.Equal(t, "annual", output.Frequency)
		assert.Equal(t, 1, output.EquipmentRows)
		assert.Equal(t, []string{"Boilers"}, output.EquipmentScopes)
		assert.Equal(t, []string{"Clause"}, output.GeneralServices)
		assert.Equal(t, "Annual", output.Agreement[domain.FieldFrequency])
	})

	t.Run("service error is returned", func(t *testing.T) {
		server, err := NewServer(&Ports{Agreement: &mockAgreementService{err: errors.New("boom")}})
		require.NoError(t, err)

		_, _, err = server.handlePreview(ctx, nil, IntakeInput{IntakeBase64: "eA=="})
		assert.Error(t, err)
	})
}
