package domain

import "time"

// GenerateRequest is everything the driving side supplies for one agreement.
type GenerateRequest struct {
	// Intake is the raw workbook bytes.
	Intake []byte

	// PropertyName is used in the filename. Empty uses the configured default.
	PropertyName string

	// Alphabetize orders equipment sections by name. Nil uses the configured
	// default.
	Alphabetize *bool
}

// GenerateResult is a rendered agreement ready to be saved or downloaded.
type GenerateResult struct {
	ID       string
	Filename string
	BaseName string
	Version  int
	Content  []byte
	Document *Document
	Intake   *Intake
	Scope    ScopeSelection
}

// Preview is a parsed intake and its scope selection, without a version
// being allocated.
type Preview struct {
	Intake    *Intake        `json:"intake" yaml:"intake"`
	Frequency string         `json:"frequency" yaml:"frequency"`
	Visits    string         `json:"visits" yaml:"visits"`
	Billing   string         `json:"billing" yaml:"billing"`
	Fraction  string         `json:"fraction" yaml:"fraction"`
	BaseName  string         `json:"base_name" yaml:"base_name"`
	Scope     ScopeSelection `json:"scope" yaml:"scope"`
}

// GenerationRecord is one entry in the generation history.
type GenerationRecord struct {
	ID             string    `json:"id"`
	PropertyName   string    `json:"property_name"`
	BaseName       string    `json:"base_name"`
	Version        int       `json:"version"`
	Filename       string    `json:"filename"`
	EquipmentCount int       `json:"equipment_count"`
	CreatedAt      time.Time `json:"created_at"`
}
