package mcp

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/scopegen/internal/core/domain"
	"github.com/custodia-labs/scopegen/internal/fsutil"
)

// IntakeInput identifies the intake workbook for a tool call.
type IntakeInput struct {
	IntakePath   string `json:"intake_path,omitempty" jsonschema:"path to the intake .xlsx on the server's filesystem"`
	IntakeBase64 string `json:"intake_base64,omitempty" jsonschema:"the intake .xlsx encoded as standard base64"`
	PropertyName string `json:"property_name,omitempty" jsonschema:"property name used in the filename (default from settings)"`
	Alphabetize  *bool  `json:"alphabetize,omitempty" jsonschema:"order equipment sections alphabetically (default from settings)"`
}

// GenerateOutput is the output schema for the generate_agreement tool.
type GenerateOutput struct {
	ID               string   `json:"id"`
	Filename         string   `json:"filename"`
	BaseName         string   `json:"base_name"`
	Version          int      `json:"version"`
	Path             string   `json:"path"`
	Bytes            int      `json:"bytes"`
	EquipmentPresent []string `json:"equipment_present"`
}

// PreviewOutput is the output schema for the preview_scope tool.
type PreviewOutput struct {
	BaseName         string            `json:"base_name"`
	Frequency        string            `json:"frequency"`
	Visits           string            `json:"visits"`
	Agreement        map[string]string `json:"agreement"`
	EquipmentRows    int               `json:"equipment_rows"`
	EquipmentPresent []string          `json:"equipment_present"`
	GeneralServices  []string          `json:"general_services"`
	EquipmentScopes  []string          `json:"equipment_scopes"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "generate_agreement",
		Description: "Generate a preventive-maintenance agreement .docx from a service intake workbook. " +
			"Consumes the next version number for the property and term.",
	}, s.handleGenerate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "preview_scope",
		Description: "Parse a service intake workbook and show the selected scope without generating a document",
	}, s.handlePreview)
}

// handleGenerate handles the generate_agreement tool invocation.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IntakeInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	data, err := loadIntake(input)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	result, err := s.ports.Agreement.Generate(ctx, domain.GenerateRequest{
		Intake:       data,
		PropertyName: input.PropertyName,
		Alphabetize:  input.Alphabetize,
	})
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	dir := s.ports.OutputDir
	if dir == "" {
		dir = "."
	}
	path, err := fsutil.Save(dir, result.Filename, result.Content)
	if err != nil {
		return nil, GenerateOutput{}, fmt.Errorf("saving %s: %w", result.Filename, err)
	}

	return nil, GenerateOutput{
		ID:               result.ID,
		Filename:         result.Filename,
		BaseName:         result.BaseName,
		Version:          result.Version,
		Path:             path,
		Bytes:            len(result.Content),
		EquipmentPresent: nonNil(result.Scope.Present),
	}, nil
}

// handlePreview handles the preview_scope tool invocation.
func (s *Server) handlePreview(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IntakeInput,
) (*mcp.CallToolResult, PreviewOutput, error) {
	data, err := loadIntake(input)
	if err != nil {
		return nil, PreviewOutput{}, err
	}

	preview, err := s.ports.Agreement.Preview(ctx, domain.GenerateRequest{
		Intake:       data,
		PropertyName: input.PropertyName,
		Alphabetize:  input.Alphabetize,
	})
	if err != nil {
		return nil, PreviewOutput{}, err
	}

	scopes := make([]string, len(preview.Scope.Equipment))
	for i, sc := range preview.Scope.Equipment {
		scopes[i] = sc.Name
	}

	return nil, PreviewOutput{
		BaseName:         preview.BaseName,
		Frequency:        preview.Frequency,
		Visits:           preview.Visits,
		Agreement:        preview.Intake.Agreement,
		EquipmentRows:    len(preview.Intake.Equipment),
		EquipmentPresent: nonNil(preview.Scope.Present),
		GeneralServices:  nonNil(preview.Scope.General),
		EquipmentScopes:  scopes,
	}, nil
}

// loadIntake returns the workbook bytes named by the input.
func loadIntake(input IntakeInput) ([]byte, error) {
	switch {
	case input.IntakeBase64 != "":
		data, err := base64.StdEncoding.DecodeString(input.IntakeBase64)
		if err != nil {
			return nil, fmt.Errorf("%w: decoding intake_base64: %v", domain.ErrInvalidInput, err)
		}
		return data, nil
	case input.IntakePath != "":
		data, err := os.ReadFile(input.IntakePath)
		if err != nil {
			return nil, fmt.Errorf("reading intake: %w", err)
		}
		return data, nil
	default:
		return nil, ErrNoIntake
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
