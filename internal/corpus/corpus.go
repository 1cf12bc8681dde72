// Package corpus owns the static legal reference corpus. Chunks are loaded
// once at startup and searched with a plain keyword scorer; the top matches
// are embedded into AI prompts as knowledge context.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Ralastessh/Industry-service/internal/domain"
	"golang.org/x/text/unicode/norm"
)

// Corpus holds the legal chunks in file order. It is read-only after Load,
// so it is safe for concurrent use.
type Corpus struct {
	chunks []domain.LegalChunk
}

// New wraps an already-validated chunk slice. Used by tests; production
// code loads from a file.
func New(chunks []domain.LegalChunk) *Corpus {
	return &Corpus{chunks: chunks}
}

// Load reads the corpus from a JSON file. Chunks with empty text are
// rejected at load time.
func Load(path string) (*Corpus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read legal corpus: %w", err)
	}

	var chunks []domain.LegalChunk
	if err := json.Unmarshal(raw, &chunks); err != nil {
		return nil, fmt.Errorf("parse legal corpus: %w", err)
	}

	for i, c := range chunks {
		if strings.TrimSpace(c.Text) == "" {
			return nil, fmt.Errorf("legal corpus entry %d: empty text", i)
		}
	}

	return &Corpus{chunks: chunks}, nil
}

// Len reports the number of loaded chunks.
func (c *Corpus) Len() int {
	return len(c.chunks)
}

// Search returns up to topK chunks ranked by keyword overlap with the query.
// The query is split on whitespace and each token is counted against the
// chunk's title, clause path and text; title and clause hits weigh more than
// body hits. Ties keep file order, so retrieval is deterministic.
//
// When no token matches any chunk (agglutinated Korean phrases often have
// no whitespace boundary to match on), the first topK chunks are returned
// instead: the prompt always carries legal context.
func (c *Corpus) Search(query string, topK int) []domain.LegalChunk {
	if topK <= 0 {
		return nil
	}
	tokens := tokenize(query)

	type scored struct {
		chunk domain.LegalChunk
		score int
	}

	matches := make([]scored, 0, len(c.chunks))
	for _, chunk := range c.chunks {
		title := normalize(chunk.DocTitle)
		clause := normalize(chunk.ClausePath)
		body := normalize(chunk.Text)

		score := 0
		for _, tok := range tokens {
			score += 3 * strings.Count(title, tok)
			score += 2 * strings.Count(clause, tok)
			score += strings.Count(body, tok)
		}
		if score > 0 {
			matches = append(matches, scored{chunk: chunk, score: score})
		}
	}

	if len(matches) == 0 {
		return c.head(topK)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	result := make([]domain.LegalChunk, len(matches))
	for i, m := range matches {
		result[i] = m.chunk
	}
	return result
}

// head returns a copy of the first n chunks in file order.
func (c *Corpus) head(n int) []domain.LegalChunk {
	if n > len(c.chunks) {
		n = len(c.chunks)
	}
	out := make([]domain.LegalChunk, n)
	copy(out, c.chunks[:n])
	return out
}

// tokenize splits the query into lowercased NFC tokens, dropping
// single-character fragments that would match almost everything.
func tokenize(query string) []string {
	fields := strings.Fields(normalize(query))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < 2 {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func normalize(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}
