package domain

// ClauseTag marks the applicability class of a general service clause.
type ClauseTag string

// Clause tags.
const (
	ClauseDefault     ClauseTag = "default"
	ClauseCoil        ClauseTag = "coil"
	ClauseRefrigerant ClauseTag = "refrigerant"
	ClauseBoiler      ClauseTag = "boiler"
	ClauseHydronic    ClauseTag = "hydronic"
)

// EquipmentSet is a set of canonical equipment names.
type EquipmentSet map[string]struct{}

// NewEquipmentSet builds a set from names.
func NewEquipmentSet(names ...string) EquipmentSet {
	s := make(EquipmentSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s EquipmentSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Intersects reports whether the two sets share at least one name.
func (s EquipmentSet) Intersects(other EquipmentSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for n := range small {
		if large.Has(n) {
			return true
		}
	}
	return false
}

// ServiceClause is one general service clause with its applicability rule.
type ServiceClause struct {
	Tag  ClauseTag
	Text string

	// Applies reports whether the clause is included for the equipment present.
	Applies func(present EquipmentSet) bool
}

// EquipmentScope is the service wording for one canonical equipment type.
type EquipmentScope struct {
	Name      string `json:"name" yaml:"name"`
	Header    string `json:"header" yaml:"header"`
	Annual    string `json:"annual" yaml:"annual"`
	Quarterly string `json:"quarterly" yaml:"quarterly"`
}

// ScopeSelection is the outcome of applying the clause rules to an intake.
type ScopeSelection struct {
	// Present lists the distinct canonical equipment names found, sorted.
	Present []string `json:"present" yaml:"present"`

	// General holds the applicable general clauses in catalog order.
	General []string `json:"general_services" yaml:"general_services"`

	// Equipment holds the equipment-specific scopes in output order.
	Equipment []EquipmentScope `json:"equipment_scopes" yaml:"equipment_scopes"`
}
