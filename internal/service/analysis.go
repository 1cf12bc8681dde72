// Package service contains the business logic layer.
//
// This file implements the scenario analysis service: it retrieves legal
// context for a scenario, delegates the structured analysis to the AI
// provider, validates the returned report, and records the result in the
// session history.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ralastessh/Industry-service/internal/ai"
	"github.com/Ralastessh/Industry-service/internal/corpus"
	"github.com/Ralastessh/Industry-service/internal/domain"
	"github.com/Ralastessh/Industry-service/internal/metrics"
	"github.com/Ralastessh/Industry-service/internal/session"
)

// =============================================================================
// Interface Definition
// =============================================================================

// AnalysisService defines the interface for scenario analysis operations.
type AnalysisService interface {
	// Analyze runs one scenario through the AI provider and records the
	// result. Returns domain.EINVALID for an invalid scenario,
	// domain.EMALFORMED when the provider response does not satisfy the
	// report contract, and domain.EUNAVAILABLE for provider failures.
	Analyze(ctx context.Context, scenario domain.ScenarioInput) (*domain.AnalysisResult, error)

	// List returns the session's analysis history, most recent first.
	List() []domain.AnalysisResult

	// GetByID returns one recorded analysis.
	// Returns domain.ENOTFOUND if no analysis has that id.
	GetByID(id string) (*domain.AnalysisResult, error)

	// Dashboard aggregates the session history for the dashboard view.
	Dashboard() domain.DashboardSummary
}

// =============================================================================
// Implementation
// =============================================================================

// analysisService implements the AnalysisService interface.
type analysisService struct {
	provider ai.Provider
	corpus   *corpus.Corpus
	store    *session.Store
	topK     int
	logger   *slog.Logger
}

// NewAnalysisService creates a new AnalysisService. topK bounds how many
// legal chunks are retrieved per scenario.
func NewAnalysisService(
	provider ai.Provider,
	corpus *corpus.Corpus,
	store *session.Store,
	topK int,
	logger *slog.Logger,
) AnalysisService {
	return &analysisService{
		provider: provider,
		corpus:   corpus,
		store:    store,
		topK:     topK,
		logger:   logger,
	}
}

// Analyze runs one scenario through the AI provider.
func (s *analysisService) Analyze(ctx context.Context, scenario domain.ScenarioInput) (*domain.AnalysisResult, error) {
	const op = "analysis.analyze"

	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	legalContext := s.corpus.Search(retrievalQuery(scenario), s.topK)

	start := time.Now()
	report, err := s.provider.Analyze(ctx, ai.AnalyzeParams{
		Scenario: scenario,
		Context:  legalContext,
	})
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("error").Inc()
		s.logger.Error("scenario analysis failed",
			"op", op,
			"work_type", scenario.WorkType,
			"duration", time.Since(start),
			"error", err)
		if ai.IsMalformed(err) {
			return nil, domain.Malformed(err, op, "AI response did not match the report schema")
		}
		return nil, domain.Unavailable(err, op, "AI analysis is temporarily unavailable")
	}

	// A report that fails structural validation is discarded entirely; a
	// partially valid report never reaches the session history.
	if err := report.Validate(); err != nil {
		metrics.AnalysesTotal.WithLabelValues("error").Inc()
		s.logger.Error("scenario analysis returned invalid report",
			"op", op,
			"work_type", scenario.WorkType,
			"error", err)
		return nil, domain.Malformed(err, op, "AI report failed validation")
	}

	result := domain.AnalysisResult{
		ID:             uuid.New().String(),
		Timestamp:      time.Now().UTC(),
		Scenario:       scenario,
		AnalysisReport: *report,
	}
	s.store.AppendAnalysis(result)

	metrics.AnalysesTotal.WithLabelValues("success").Inc()
	for _, item := range report.Checklist {
		metrics.ChecklistFindings.WithLabelValues(item.Status.String()).Inc()
	}

	s.logger.Info("scenario analysis completed",
		"op", op,
		"analysis_id", result.ID,
		"work_type", scenario.WorkType,
		"context_chunks", len(legalContext),
		"checklist_items", len(report.Checklist),
		"fail_count", report.SummaryStats.FailCount,
		"duration", time.Since(start))

	return &result, nil
}

// List returns the session's analysis history.
func (s *analysisService) List() []domain.AnalysisResult {
	return s.store.Analyses()
}

// GetByID returns one recorded analysis.
func (s *analysisService) GetByID(id string) (*domain.AnalysisResult, error) {
	return s.store.AnalysisByID(id)
}

// Dashboard aggregates the session history.
func (s *analysisService) Dashboard() domain.DashboardSummary {
	analyses := s.store.Analyses()

	summary := domain.DashboardSummary{TotalAnalyses: len(analyses)}
	if len(analyses) == 0 {
		return summary
	}

	riskSum := 0.0
	for _, a := range analyses {
		summary.TotalFindings += a.SummaryStats.TotalItems
		summary.FailFindings += a.SummaryStats.FailCount
		summary.WarnFindings += a.SummaryStats.WarnCount
		riskSum += a.SummaryStats.RiskIndex()
	}
	summary.AverageRiskIndex = riskSum / float64(len(analyses))

	// History is most recent first.
	latest := analyses[0].Timestamp
	summary.LatestAnalysisAt = &latest

	return summary
}

// retrievalQuery builds the corpus search text from the scenario fields
// that describe the work itself.
func retrievalQuery(scenario domain.ScenarioInput) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{scenario.WorkType, scenario.Equipment, scenario.Environment, scenario.Workforce} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
