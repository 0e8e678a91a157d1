// Package catalog holds the static service wording used to build PM
// agreements: the equipment scope catalog, the alias table used to
// canonicalise free-text equipment names, and the ordered list of general
// service clauses with their applicability rules.
//
// Nothing in this package is mutated at runtime. Accessors return copies so
// callers cannot alter the catalog.
package catalog
