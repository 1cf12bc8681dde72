package glossary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glossary.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"term": "중대재해", "definition": "피해 정도가 심한 재해", "legal_example": "중대재해처벌법 제2조", "industrial_significance": "경영책임자 처벌의 전제", "category": "중대재해처벌법"},
		{"term": "위험성평가", "definition": "유해·위험요인 파악 절차", "legal_example": "산업안전보건법 제36조", "industrial_significance": "예방 관리의 출발점", "category": "산업안전보건법"}
	]`)

	terms, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, terms, 2)
	assert.Equal(t, "중대재해", terms[0].Term)
}

func TestLoadCatalog_RejectsEmptyTerm(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"term": "  ", "definition": "비어 있음", "category": "중대재해처벌법"}
	]`)

	_, err := LoadCatalog(path)
	assert.Error(t, err)
}

func TestLoadCatalog_RejectsDuplicateTerm(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"term": "중대재해", "definition": "첫 번째", "category": "중대재해처벌법"},
		{"term": "중대재해", "definition": "두 번째", "category": "산업안전보건법"}
	]`)

	_, err := LoadCatalog(path)
	assert.Error(t, err)
}

func TestLoadCatalog_RejectsUnknownCategory(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"term": "근로계약", "definition": "정의", "category": "근로기준법"}
	]`)

	_, err := LoadCatalog(path)
	assert.Error(t, err)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
