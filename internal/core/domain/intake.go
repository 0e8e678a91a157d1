package domain

// Intake form labels the parser and assembler key on.
const (
	FieldStartDate     = "Preferred Start Date"
	FieldEndDate       = "Preferred End Date"
	FieldFrequency     = "Service Frequency"
	FieldEquipmentType = "Equipment Type"
)

// DefaultIntakeSheet is the workbook tab holding the intake form.
const DefaultIntakeSheet = "Service Intake"

// AgreementMetadata maps agreement field labels to values. Date values are
// normalised to YYYY-MM-DD; anything else is trimmed text.
type AgreementMetadata map[string]string

// Lookup returns the value for label and whether it is present and non-blank.
func (a AgreementMetadata) Lookup(label string) (string, bool) {
	v, ok := a[label]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Frequency returns the raw service frequency label.
func (a AgreementMetadata) Frequency() string {
	return a[FieldFrequency]
}

// EquipmentRow maps equipment column headers to trimmed cell values.
type EquipmentRow map[string]string

// Type returns the raw equipment type text.
func (r EquipmentRow) Type() string {
	return r[FieldEquipmentType]
}

// Intake is the structured content of an intake workbook.
type Intake struct {
	Agreement AgreementMetadata `json:"agreement" yaml:"agreement"`
	Equipment []EquipmentRow    `json:"equipment_rows" yaml:"equipment_rows"`
}

// NewIntake returns an intake with empty, non-nil collections.
func NewIntake() *Intake {
	return &Intake{
		Agreement: AgreementMetadata{},
		Equipment: []EquipmentRow{},
	}
}
