package domain

import "strings"

// =============================================================================
// Glossary Types
// =============================================================================

// TermCategory is the closed set of glossary categories.
type TermCategory string

const (
	CategorySAPA    TermCategory = "중대재해처벌법"
	CategoryOSHAct  TermCategory = "산업안전보건법"
	CategoryISO4500 TermCategory = "ISO 45001"
)

// Valid returns true if the category is a recognized value.
func (c TermCategory) Valid() bool {
	switch c {
	case CategorySAPA, CategoryOSHAct, CategoryISO4500:
		return true
	}
	return false
}

// GlossaryTerm is a static reference entry describing one domain term.
// The catalog is read-only reference data supplied at process start.
type GlossaryTerm struct {
	Term                   string       `json:"term"`
	Definition             string       `json:"definition"`
	LegalExample           string       `json:"legal_example"`
	IndustrialSignificance string       `json:"industrial_significance"`
	Category               TermCategory `json:"category"`
}

// Validate rejects catalog entries that cannot participate in matching.
// A zero-length term would otherwise match everything.
func (t GlossaryTerm) Validate() error {
	const op = "glossary_term.validate"
	if strings.TrimSpace(t.Term) == "" {
		return Invalid(op, "term must not be empty")
	}
	if t.Definition == "" {
		return Invalid(op, "definition is required")
	}
	if !t.Category.Valid() {
		return Invalid(op, "category is not a recognized value")
	}
	return nil
}
