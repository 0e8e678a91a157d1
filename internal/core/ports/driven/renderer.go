package driven

import "github.com/custodia-labs/scopegen/internal/core/domain"

// DocumentRenderer encodes an assembled agreement into a file format.
type DocumentRenderer interface {
	// Render encodes doc and returns the file bytes.
	Render(doc *domain.Document) ([]byte, error)

	// Extension returns the file extension including the dot, e.g. ".docx".
	Extension() string

	// MIMEType returns the content type of rendered files.
	MIMEType() string
}
