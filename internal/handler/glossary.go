// Package handler contains the HTTP handlers for the compliance service.
//
// This file implements the glossary endpoints: catalog search and term
// annotation of free-form report text.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ralastessh/Industry-service/internal/domain"
	"github.com/Ralastessh/Industry-service/internal/glossary"
	"github.com/Ralastessh/Industry-service/internal/metrics"
)

// GlossaryHandler handles glossary requests.
type GlossaryHandler struct {
	catalog   []domain.GlossaryTerm
	annotator *glossary.Annotator
	logger    *slog.Logger
}

// NewGlossaryHandler creates a new GlossaryHandler.
func NewGlossaryHandler(catalog []domain.GlossaryTerm, annotator *glossary.Annotator, logger *slog.Logger) *GlossaryHandler {
	return &GlossaryHandler{
		catalog:   catalog,
		annotator: annotator,
		logger:    logger,
	}
}

// List handles GET /api/glossary. The optional q parameter filters by term
// or category.
func (h *GlossaryHandler) List(w http.ResponseWriter, r *http.Request) {
	terms := glossary.Filter(h.catalog, r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"terms": terms,
	})
}

// annotateRequest is the payload for POST /api/glossary/annotate.
type annotateRequest struct {
	Text string `json:"text"`
}

// Annotate handles POST /api/glossary/annotate. It splits the text into
// plain and term-bearing segments; concatenating the segment texts always
// reproduces the input.
func (h *GlossaryHandler) Annotate(w http.ResponseWriter, r *http.Request) {
	var req annotateRequest
	if err := decodeJSON(r, &req); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	segments := h.annotator.Annotate(req.Text)
	if segments == nil {
		segments = []glossary.Segment{}
	}
	metrics.GlossaryAnnotations.Inc()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"segments": segments,
	})
}
