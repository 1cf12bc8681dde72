package domain

// LegalChunk is one excerpt from the static legal reference corpus that is
// embedded into AI prompts as knowledge context. The corpus is opaque to the
// analysis contract: chunks are carried as-is, never interpreted.
type LegalChunk struct {
	DocTitle   string `json:"doc_title"`
	DocType    string `json:"doc_type"`
	ClausePath string `json:"clause_path"`
	Text       string `json:"text"`
}
