package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected Frequency
	}{
		{name: "annual", label: "Annual", expected: FrequencyAnnual},
		{name: "annually lower", label: "annually", expected: FrequencyAnnual},
		{name: "semi-annual", label: "Semi-Annual", expected: FrequencySemiAnnual},
		{name: "semi upper", label: "SEMIANNUAL", expected: FrequencySemiAnnual},
		{name: "quarterly", label: "Quarterly", expected: FrequencyQuarterly},
		{name: "quarter", label: "quarter", expected: FrequencyQuarterly},
		{name: "empty", label: "", expected: FrequencyUnknown},
		{name: "monthly", label: "Monthly", expected: FrequencyUnknown},
		{name: "leading space is not trimmed", label: " Annual", expected: FrequencyUnknown},
		{name: "bi-annual", label: "bi-annual", expected: FrequencyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseFrequency(tt.label))
		})
	}
}

func TestFrequency_Wording(t *testing.T) {
	assert.Equal(t, "one (1) annual service per year", VisitsText("Annual"))
	assert.Equal(t,
		"one (1) operating inspection and one (1) annual service per year",
		VisitsText("Semi-Annual"))
	assert.Equal(t,
		"three (3) operating inspections and one (1) annual service per year",
		VisitsText("Quarterly"))

	assert.Equal(t,
		"Billing will occur annually following completion of the scheduled maintenance visit.",
		BillingText("annual"))
	assert.Equal(t,
		"Billing will occur semi-annually following completion of each scheduled maintenance visit.",
		BillingText("semi"))
	assert.Equal(t,
		"Billing will occur quarterly following completion of each scheduled maintenance visit.",
		BillingText("quarterly"))

	assert.Equal(t, "the full annual agreement total", FractionText("ANNUAL"))
	assert.Equal(t, "one-half (1/2) of the annual agreement total", FractionText("Semi"))
	assert.Equal(t, "one-fourth (1/4) of the annual agreement total", FractionText("Quarterly"))
}

func TestFrequency_UnknownFallsBackToQuarterly(t *testing.T) {
	for _, label := range []string{"", "monthly", "weekly", "???", "12", "Bi-Monthly"} {
		t.Run(label, func(t *testing.T) {
			assert.Equal(t, VisitsText("quarterly"), VisitsText(label))
			assert.Equal(t, BillingText("quarterly"), BillingText(label))
			assert.Equal(t, FractionText("quarterly"), FractionText(label))
		})
	}
}

func TestFrequency_String(t *testing.T) {
	assert.Equal(t, "annual", FrequencyAnnual.String())
	assert.Equal(t, "semi-annual", FrequencySemiAnnual.String())
	assert.Equal(t, "quarterly", FrequencyQuarterly.String())
	assert.Equal(t, "unknown", FrequencyUnknown.String())
	assert.Equal(t, "unknown", Frequency(42).String())
}

func TestFrequency_OutOfRangeUsesQuarterly(t *testing.T) {
	f := Frequency(42)
	assert.Equal(t, FrequencyQuarterly.Visits(), f.Visits())
	assert.Equal(t, FrequencyQuarterly.Billing(), f.Billing())
	assert.Equal(t, FrequencyQuarterly.Fraction(), f.Fraction())
}
