// Package datefmt parses the loosely formatted dates found on intake forms.
//
// Intake spreadsheets are filled in by hand, so dates arrive as ISO strings,
// US-style slashes, spelled-out months, or Excel serial numbers. Parsing is
// month-first for ambiguous input.
package datefmt

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ISOLayout is the calendar-date layout used for normalised values.
const ISOLayout = "2006-01-02"

// minYear is the earliest year accepted; dateparse reports year 0 for
// dates typed without one.
const minYear = 1000

// UnknownYear is the filename placeholder for an unparsable year.
const UnknownYear = "XXXX"

// Parse parses s as a date. Blank input and bare numbers that are not a
// four-digit year are rejected so quantities are never mistaken for dates.
// Dates without a year ("3/15", "March 15") are rejected too.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if isDigits(s) && len(s) != 4 {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil || t.Year() < minYear {
		return time.Time{}, false
	}
	return t, true
}

// Normalize returns s as YYYY-MM-DD when it parses as a date, otherwise
// the trimmed input.
func Normalize(s string) string {
	if t, ok := Parse(s); ok {
		return t.Format(ISOLayout)
	}
	return strings.TrimSpace(s)
}

// Year returns the four-digit year of s, or UnknownYear.
func Year(s string) string {
	t, ok := Parse(s)
	if !ok {
		return UnknownYear
	}
	return strconv.Itoa(t.Year())
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
