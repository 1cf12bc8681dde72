// Package glossary owns the static safety-term catalog and the annotator
// that marks recognized terms inside free-form report text.
package glossary

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Ralastessh/Industry-service/internal/domain"
	"golang.org/x/text/unicode/norm"
)

// LoadCatalog reads the glossary catalog from a JSON file and validates
// every entry. Zero-length terms and duplicate terms are rejected here, at
// load time, so the annotator never sees them.
func LoadCatalog(path string) ([]domain.GlossaryTerm, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read glossary catalog: %w", err)
	}

	var terms []domain.GlossaryTerm
	if err := json.Unmarshal(raw, &terms); err != nil {
		return nil, fmt.Errorf("parse glossary catalog: %w", err)
	}

	seen := make(map[string]bool, len(terms))
	for i, t := range terms {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("glossary catalog entry %d: %w", i, err)
		}
		key := norm.NFC.String(t.Term)
		if seen[key] {
			return nil, fmt.Errorf("glossary catalog entry %d: duplicate term %q", i, t.Term)
		}
		seen[key] = true
	}

	return terms, nil
}

// Filter returns the catalog entries whose term or category contains the
// query, case-insensitively. An empty query returns the whole catalog.
// This backs the glossary search box.
func Filter(catalog []domain.GlossaryTerm, query string) []domain.GlossaryTerm {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return catalog
	}

	matched := make([]domain.GlossaryTerm, 0, len(catalog))
	for _, t := range catalog {
		if strings.Contains(strings.ToLower(t.Term), q) ||
			strings.Contains(strings.ToLower(string(t.Category)), q) {
			matched = append(matched, t)
		}
	}
	return matched
}
