package services

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/scopegen/internal/catalog"
	"github.com/custodia-labs/scopegen/internal/core/domain"
)

// PresentEquipment canonicalises each row's equipment type and returns the
// distinct names that have a scope in the catalog. Unmapped rows are
// skipped.
func PresentEquipment(rows []domain.EquipmentRow) domain.EquipmentSet {
	present := domain.NewEquipmentSet()
	for _, r := range rows {
		name, ok := catalog.Canonicalize(r.Type())
		if !ok {
			continue
		}
		if _, ok := catalog.Scope(name); !ok {
			continue
		}
		present[name] = struct{}{}
	}
	return present
}

// SelectScopes applies the clause rules to the equipment rows.
//
// General clauses keep catalog order. Equipment scopes are alphabetical by
// canonical name when alphabetize is true, catalog order otherwise.
func SelectScopes(rows []domain.EquipmentRow, alphabetize bool) domain.ScopeSelection {
	present := PresentEquipment(rows)

	var general []string
	for _, c := range catalog.Clauses() {
		if c.Applies(present) {
			general = append(general, c.Text)
		}
	}

	names := make([]string, 0, len(present))
	for n := range present {
		names = append(names, n)
	}
	sort.Strings(names)

	ordered := names
	if !alphabetize {
		ordered = make([]string, len(names))
		copy(ordered, names)
		sort.SliceStable(ordered, func(i, j int) bool {
			return catalog.Position(ordered[i]) < catalog.Position(ordered[j])
		})
	}

	scopes := make([]domain.EquipmentScope, 0, len(ordered))
	for _, n := range ordered {
		if s, ok := catalog.Scope(n); ok {
			scopes = append(scopes, s)
		}
	}

	return domain.ScopeSelection{
		Present:   names,
		General:   general,
		Equipment: scopes,
	}
}

// NumberClauses formats clauses for display as "1.\t<text>".
func NumberClauses(clauses []string) []string {
	out := make([]string, len(clauses))
	for i, c := range clauses {
		out[i] = fmt.Sprintf("%d.\t%s", i+1, c)
	}
	return out
}
