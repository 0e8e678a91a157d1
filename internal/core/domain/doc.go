// Package domain defines the core business entities for scopegen.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Intake: Agreement metadata and equipment rows read from a workbook
//   - Frequency: Service frequency classification and derived wording
//   - ScopeSelection: General clauses and equipment scopes chosen for a site
//   - Document: The ordered block structure of a PM agreement
//   - GenerationRecord: One entry in the generation history
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
