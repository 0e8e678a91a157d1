package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/scopegen/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for scopegen resources.
	uriScheme = "scopegen://"

	historyLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "versions",
		Name:        "versions",
		Description: "Version tracker: next revision for each agreement base name",
		MIMEType:    "application/json",
	}, s.handleVersionsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Most recent generated agreements, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleVersionsResource returns the version tracker.
func (s *Server) handleVersionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	versions, err := s.ports.Agreement.Versions(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading versions: %w", err)
	}
	if versions == nil {
		versions = map[string]int{}
	}
	return jsonResource(req.Params.URI, versions)
}

// handleHistoryResource returns recent generations.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Agreement.History(ctx, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	if records == nil {
		records = []domain.GenerationRecord{}
	}
	return jsonResource(req.Params.URI, records)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
