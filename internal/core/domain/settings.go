package domain

// StorageBackend selects where the version tracker and history live.
type StorageBackend string

// Available storage backends.
const (
	// StorageFile keeps the tracker in a JSON file.
	StorageFile StorageBackend = "file"

	// StorageSQLite keeps the tracker and history in a SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps everything in process memory. Intended for tests
	// and dry runs.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageFile, StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageFile:
		return "JSON file"
	case StorageSQLite:
		return "SQLite database"
	case StorageMemory:
		return "In-memory (not persisted)"
	default:
		return "Unknown"
	}
}

// StorageSettings configures persistence.
type StorageSettings struct {
	Backend StorageBackend
	DataDir string
}

// DocumentSettings configures document rendering.
type DocumentSettings struct {
	FontName    string
	FontSize    float64
	Alphabetize bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	Storage             StorageSettings
	Document            DocumentSettings
	OutputDir           string
	IntakeSheet         string
	DefaultPropertyName string
}

// DefaultAppSettings returns settings with default values.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			Backend: StorageFile,
			DataDir: ".data",
		},
		Document: DocumentSettings{
			FontName:    DefaultFontName,
			FontSize:    DefaultFontSize,
			Alphabetize: true,
		},
		OutputDir:           ".",
		IntakeSheet:         DefaultIntakeSheet,
		DefaultPropertyName: "Property",
	}
}
