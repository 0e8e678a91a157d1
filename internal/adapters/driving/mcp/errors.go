// Package mcp provides an MCP (Model Context Protocol) server adapter for
// scopegen. It lets AI assistants generate PM agreements from intake
// workbooks and inspect the version tracker.
package mcp

import "errors"

// ErrMissingAgreementService is returned when the agreement service is not provided.
var ErrMissingAgreementService = errors.New("mcp: agreement service is required")

// ErrNoIntake is returned when a tool call names no intake workbook.
var ErrNoIntake = errors.New("mcp: intake_path or intake_base64 is required")
