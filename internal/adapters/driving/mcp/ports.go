package mcp

import (
	"github.com/custodia-labs/scopegen/internal/core/ports/driving"
)

// Ports aggregates the driving ports and settings the MCP server needs.
type Ports struct {
	// Agreement generates and previews agreements.
	Agreement driving.AgreementService

	// OutputDir is where generated agreements are written. Empty means the
	// current directory.
	OutputDir string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Agreement == nil {
		return ErrMissingAgreementService
	}
	return nil
}
