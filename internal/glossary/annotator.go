package glossary

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Ralastessh/Industry-service/internal/domain"
	"golang.org/x/text/unicode/norm"
)

// Segment is one element of annotated output: either plain text (Term is
// nil) or a recognized glossary term carrying its catalog entry.
type Segment struct {
	Text string               `json:"text"`
	Term *domain.GlossaryTerm `json:"term,omitempty"`
}

// IsTerm returns true if the segment is a recognized glossary term.
func (s Segment) IsTerm() bool {
	return s.Term != nil
}

// Annotator locates glossary terms inside arbitrary text. It is built once
// per catalog version and is safe for concurrent use; Annotate is a pure
// function of its input.
//
// Matching is exact-case and exact-substring. Terms are tried longest
// first, so a compound term is never split into a shorter term plus plain
// text (중대재해처벌법 always matches as a whole instead of 중대재해 +
// 처벌법). Both catalog terms and input text are NFC-normalized so composed
// and decomposed Hangul spellings compare equal.
type Annotator struct {
	terms   map[string]*domain.GlossaryTerm
	pattern *regexp.Regexp
}

// NewAnnotator builds an annotator from the catalog. Entries must already
// be validated; an invalid entry (for example a zero-length term, which
// would otherwise match everything) is rejected.
func NewAnnotator(catalog []domain.GlossaryTerm) (*Annotator, error) {
	a := &Annotator{
		terms: make(map[string]*domain.GlossaryTerm, len(catalog)),
	}

	normalized := make([]string, 0, len(catalog))
	for i := range catalog {
		if err := catalog[i].Validate(); err != nil {
			return nil, err
		}
		key := norm.NFC.String(catalog[i].Term)
		if _, dup := a.terms[key]; dup {
			// First declaration wins; equal-length overlaps keep catalog order.
			continue
		}
		a.terms[key] = &catalog[i]
		normalized = append(normalized, key)
	}

	if len(normalized) == 0 {
		return a, nil
	}

	// Longest term first. The alternation is tried in order, so sorting by
	// length makes the most specific compound term win over any term whose
	// surface form is its substring. The sort is stable: equal-length terms
	// keep their declared catalog order.
	sort.SliceStable(normalized, func(i, j int) bool {
		return len(normalized[i]) > len(normalized[j])
	})

	escaped := make([]string, len(normalized))
	for i, term := range normalized {
		escaped[i] = regexp.QuoteMeta(term)
	}

	pattern, err := regexp.Compile(strings.Join(escaped, "|"))
	if err != nil {
		return nil, err
	}
	a.pattern = pattern

	return a, nil
}

// Annotate splits text into an ordered sequence of plain and term segments.
// Empty inter-match runs are dropped, so consumers never render no-op
// segments. Text with no recognized terms comes back as one plain segment.
func (a *Annotator) Annotate(text string) []Segment {
	if text == "" {
		return nil
	}

	normalized := norm.NFC.String(text)
	if a.pattern == nil {
		return []Segment{{Text: normalized}}
	}

	matches := a.pattern.FindAllStringIndex(normalized, -1)
	if len(matches) == 0 {
		return []Segment{{Text: normalized}}
	}

	segments := make([]Segment, 0, 2*len(matches)+1)
	prev := 0
	for _, m := range matches {
		if m[0] > prev {
			segments = append(segments, Segment{Text: normalized[prev:m[0]]})
		}
		matched := normalized[m[0]:m[1]]
		segments = append(segments, Segment{Text: matched, Term: a.terms[matched]})
		prev = m[1]
	}
	if prev < len(normalized) {
		segments = append(segments, Segment{Text: normalized[prev:]})
	}

	return segments
}
