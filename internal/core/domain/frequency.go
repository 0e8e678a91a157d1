package domain

import "strings"

// Frequency classifies a service frequency label from the intake form.
type Frequency int

// Frequency variants. FrequencyUnknown derives the same wording as
// FrequencyQuarterly.
const (
	FrequencyUnknown Frequency = iota
	FrequencyAnnual
	FrequencySemiAnnual
	FrequencyQuarterly
)

// ParseFrequency classifies label by case-insensitive prefix:
// "annual", "semi" and "quarter". Anything else, including the empty
// string, is FrequencyUnknown.
func ParseFrequency(label string) Frequency {
	f := strings.ToLower(label)
	switch {
	case strings.HasPrefix(f, "annual"):
		return FrequencyAnnual
	case strings.HasPrefix(f, "semi"):
		return FrequencySemiAnnual
	case strings.HasPrefix(f, "quarter"):
		return FrequencyQuarterly
	default:
		return FrequencyUnknown
	}
}

// String returns the string representation.
func (f Frequency) String() string {
	switch f {
	case FrequencyAnnual:
		return "annual"
	case FrequencySemiAnnual:
		return "semi-annual"
	case FrequencyQuarterly:
		return "quarterly"
	default:
		return "unknown"
	}
}

// frequencyWording is the derived text for one frequency variant.
type frequencyWording struct {
	visits   string
	billing  string
	fraction string
}

var frequencyTable = map[Frequency]frequencyWording{
	FrequencyAnnual: {
		visits:   "one (1) annual service per year",
		billing:  "Billing will occur annually following completion of the scheduled maintenance visit.",
		fraction: "the full annual agreement total",
	},
	FrequencySemiAnnual: {
		visits:   "one (1) operating inspection and one (1) annual service per year",
		billing:  "Billing will occur semi-annually following completion of each scheduled maintenance visit.",
		fraction: "one-half (1/2) of the annual agreement total",
	},
	FrequencyQuarterly: {
		visits:   "three (3) operating inspections and one (1) annual service per year",
		billing:  "Billing will occur quarterly following completion of each scheduled maintenance visit.",
		fraction: "one-fourth (1/4) of the annual agreement total",
	},
}

func (f Frequency) wording() frequencyWording {
	if w, ok := frequencyTable[f]; ok {
		return w
	}
	return frequencyTable[FrequencyQuarterly]
}

// Visits returns the visit-count phrase used in the intro paragraph.
func (f Frequency) Visits() string { return f.wording().visits }

// Billing returns the billing-cadence sentence.
func (f Frequency) Billing() string { return f.wording().billing }

// Fraction returns the invoice-fraction phrase.
func (f Frequency) Fraction() string { return f.wording().fraction }

// VisitsText derives the visit-count phrase from a raw frequency label.
func VisitsText(label string) string { return ParseFrequency(label).Visits() }

// BillingText derives the billing sentence from a raw frequency label.
func BillingText(label string) string { return ParseFrequency(label).Billing() }

// FractionText derives the invoice-fraction phrase from a raw frequency label.
func FractionText(label string) string { return ParseFrequency(label).Fraction() }
