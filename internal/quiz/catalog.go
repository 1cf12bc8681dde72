// Package quiz loads the static multiple-choice question bank served by the
// learning endpoints.
package quiz

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Ralastessh/Industry-service/internal/domain"
)

// LoadCatalog reads the question bank from a JSON file and validates every
// entry. An unanswerable question fails the whole load so a broken data file
// is caught at startup, not at serve time.
func LoadCatalog(path string) ([]domain.QuizQuestion, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz catalog: %w", err)
	}

	var questions []domain.QuizQuestion
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("parse quiz catalog: %w", err)
	}

	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("quiz catalog entry %d: %w", i, err)
		}
	}

	return questions, nil
}
