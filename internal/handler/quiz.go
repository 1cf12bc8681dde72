// Package handler contains the HTTP handlers for the compliance service.
//
// This file serves the static quiz question bank.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ralastessh/Industry-service/internal/domain"
)

// QuizHandler serves the quiz question bank.
type QuizHandler struct {
	questions []domain.QuizQuestion
	logger    *slog.Logger
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(questions []domain.QuizQuestion, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{
		questions: questions,
		logger:    logger,
	}
}

// List handles GET /api/quiz.
func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": h.questions,
	})
}
