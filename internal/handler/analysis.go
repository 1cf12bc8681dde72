// Package handler contains the HTTP handlers for the compliance service.
//
// This file implements the scenario analysis endpoints: submitting a
// scenario for AI review, reading back the session history, and the
// dashboard aggregate.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ralastessh/Industry-service/internal/domain"
	"github.com/Ralastessh/Industry-service/internal/service"
)

// AnalysisHandler handles scenario analysis requests.
type AnalysisHandler struct {
	service service.AnalysisService
	logger  *slog.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(service service.AnalysisService, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		logger:  logger,
	}
}

// Create handles POST /api/analyses.
func (h *AnalysisHandler) Create(w http.ResponseWriter, r *http.Request) {
	var scenario domain.ScenarioInput
	if err := decodeJSON(r, &scenario); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	result, err := h.service.Analyze(r.Context(), scenario)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// List handles GET /api/analyses.
func (h *AnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"analyses": h.service.List(),
	})
}

// GetByID handles GET /api/analyses/{id}.
func (h *AnalysisHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetByID(r.PathValue("id"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Dashboard handles GET /api/dashboard.
func (h *AnalysisHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Dashboard())
}
