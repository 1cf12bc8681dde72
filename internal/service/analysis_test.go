package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ralastessh/Industry-service/internal/ai"
	"github.com/Ralastessh/Industry-service/internal/ai/mock"
	"github.com/Ralastessh/Industry-service/internal/corpus"
	"github.com/Ralastessh/Industry-service/internal/domain"
	"github.com/Ralastessh/Industry-service/internal/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testLegalCorpus() *corpus.Corpus {
	return corpus.New([]domain.LegalChunk{
		{DocTitle: "산업안전보건법", DocType: "법률", ClausePath: "제38조", Text: "사업주는 근로자에게 보호구를 지급하여야 한다."},
		{DocTitle: "산업안전보건기준에 관한 규칙", DocType: "규칙", ClausePath: "제32조", Text: "지게차 작업 구역에는 근로자의 출입을 통제하여야 한다."},
	})
}

func testScenario() domain.ScenarioInput {
	return domain.ScenarioInput{
		WorkType:    "야간 물류창고 상하차",
		Workforce:   "일용직 6명",
		Equipment:   "지게차 2대",
		Environment: "우천, 조도 낮음",
	}
}

func newAnalysisFixture(t *testing.T) (*mock.Provider, *session.Store, AnalysisService) {
	t.Helper()
	provider := mock.New(testLogger())
	store := session.NewStore()
	svc := NewAnalysisService(provider, testLegalCorpus(), store, 2, testLogger())
	return provider, store, svc
}

func TestAnalysisService_Analyze(t *testing.T) {
	provider, store, svc := newAnalysisFixture(t)

	result, err := svc.Analyze(context.Background(), testScenario())
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.False(t, result.Timestamp.IsZero())
	assert.Equal(t, "야간 물류창고 상하차", result.Scenario.WorkType)
	assert.NotEmpty(t, result.Checklist)

	assert.Equal(t, 1, provider.AnalyzeCalls)
	assert.Equal(t, testScenario(), provider.LastAnalyzeParams.Scenario)
	assert.NotEmpty(t, provider.LastAnalyzeParams.Context, "legal context should be retrieved for the prompt")

	history := store.Analyses()
	require.Len(t, history, 1)
	assert.Equal(t, result.ID, history[0].ID)
}

func TestAnalysisService_Analyze_UnmatchedScenarioStillGetsContext(t *testing.T) {
	provider, _, svc := newAnalysisFixture(t)

	// No whitespace boundary matches any seeded chunk.
	_, err := svc.Analyze(context.Background(), domain.ScenarioInput{WorkType: "용접작업"})
	require.NoError(t, err)

	assert.NotEmpty(t, provider.LastAnalyzeParams.Context,
		"prompt must carry legal context even when keyword search misses")
}

func TestAnalysisService_Analyze_InvalidScenario(t *testing.T) {
	provider, store, svc := newAnalysisFixture(t)

	_, err := svc.Analyze(context.Background(), domain.ScenarioInput{WorkType: "   "})

	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	assert.Zero(t, provider.AnalyzeCalls, "provider must not be called for invalid input")
	assert.Empty(t, store.Analyses())
}

func TestAnalysisService_Analyze_MalformedResponse(t *testing.T) {
	provider, store, svc := newAnalysisFixture(t)
	provider.AnalyzeError = ai.WrapError("analyze", ai.EAIMalformed)

	_, err := svc.Analyze(context.Background(), testScenario())

	assert.Equal(t, domain.EMALFORMED, domain.ErrorCode(err))
	assert.Empty(t, store.Analyses(), "failed analyses must not enter history")
}

func TestAnalysisService_Analyze_ProviderUnavailable(t *testing.T) {
	provider, store, svc := newAnalysisFixture(t)
	provider.AnalyzeError = errors.New("connection refused")

	_, err := svc.Analyze(context.Background(), testScenario())

	assert.Equal(t, domain.EUNAVAILABLE, domain.ErrorCode(err))
	assert.Empty(t, store.Analyses())
}

func TestAnalysisService_Analyze_InvalidReportRejected(t *testing.T) {
	provider, store, svc := newAnalysisFixture(t)
	// Stats disagree with the checklist tallies.
	provider.AnalyzeResponse = &domain.AnalysisReport{
		Checklist: []domain.ChecklistItem{{
			ItemTitle:      "보호구 지급",
			Status:         domain.StatusFail,
			WhyItMatters:   "중요",
			RequiredAction: "지급",
			LegalBasis:     "산업안전보건법 제38조",
		}},
		RiskAssessment:       domain.RiskAssessment{Overview: "개요"},
		ComplianceEvaluation: domain.ComplianceEvaluation{Summary: "요약"},
		SummaryStats:         domain.SummaryStats{TotalItems: 1, FailCount: 0},
	}

	_, err := svc.Analyze(context.Background(), testScenario())

	assert.Equal(t, domain.EMALFORMED, domain.ErrorCode(err))
	assert.Empty(t, store.Analyses())
}

func TestAnalysisService_ListAndGet(t *testing.T) {
	_, _, svc := newAnalysisFixture(t)

	first, err := svc.Analyze(context.Background(), testScenario())
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), testScenario())
	require.NoError(t, err)

	list := svc.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "history is most recent first")

	got, err := svc.GetByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = svc.GetByID("missing")
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestAnalysisService_Dashboard(t *testing.T) {
	_, _, svc := newAnalysisFixture(t)

	assert.Equal(t, domain.DashboardSummary{}, svc.Dashboard())

	_, err := svc.Analyze(context.Background(), testScenario())
	require.NoError(t, err)
	_, err = svc.Analyze(context.Background(), testScenario())
	require.NoError(t, err)

	summary := svc.Dashboard()
	assert.Equal(t, 2, summary.TotalAnalyses)
	assert.Equal(t, 6, summary.TotalFindings)
	assert.Equal(t, 2, summary.FailFindings)
	assert.Equal(t, 2, summary.WarnFindings)
	assert.InDelta(t, 1.0/3.0, summary.AverageRiskIndex, 1e-9)
	require.NotNil(t, summary.LatestAnalysisAt)
}
