package gemini

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ralastessh/Industry-service/internal/ai"
	"github.com/Ralastessh/Industry-service/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validReportJSON(t *testing.T) string {
	t.Helper()
	report := domain.AnalysisReport{
		Checklist: []domain.ChecklistItem{{
			ItemTitle:      "보호구 지급 및 착용 관리",
			Status:         domain.StatusFail,
			WhyItMatters:   "추락·낙하물 재해의 피해를 줄이는 최소한의 방어선이다.",
			RequiredAction: "전 작업자에게 안전모를 지급하고 착용을 점검한다.",
			LegalBasis:     "산업안전보건법 제38조",
		}},
		RiskAssessment: domain.RiskAssessment{
			Overview: "혼재 작업 구간의 충돌 위험이 높다.",
			Hazards:  []string{"지게차-보행자 충돌"},
		},
		ComplianceEvaluation: domain.ComplianceEvaluation{
			AppliedLaws: []string{"산업안전보건법"},
			Summary:     "보호구 관리 공백이 확인되었습니다.",
		},
		SummaryStats: domain.SummaryStats{
			TotalItems:  1,
			FailCount:   1,
			Top3Actions: []string{"보호구 즉시 지급"},
		},
	}
	raw, err := json.Marshal(report)
	require.NoError(t, err)
	return string(raw)
}

// candidateResponse wraps a text payload in the API response envelope.
func candidateResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role":  "model",
					"parts": []map[string]string{{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
		"usageMetadata": map[string]int{
			"promptTokenCount":     120,
			"candidatesTokenCount": 480,
		},
	}
}

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := New(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	}, testLogger())
	require.NoError(t, err)
	return p
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(Config{}, testLogger())
	assert.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	p, err := New(Config{APIKey: "test-key"}, testLogger())
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, p.config.Model)
	assert.Equal(t, APIBaseURL, p.config.BaseURL)
}

func TestAnalyze(t *testing.T) {
	var gotPath, gotKey string
	var gotBody apiRequest
	reportJSON := validReportJSON(t)

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		writeResponse(w, candidateResponse(reportJSON))
	})

	report, err := p.Analyze(context.Background(), ai.AnalyzeParams{
		Scenario: domain.ScenarioInput{WorkType: "야간 상하차", Equipment: "지게차 2대"},
		Context: []domain.LegalChunk{
			{DocTitle: "산업안전보건법", DocType: "법률", ClausePath: "제38조", Text: "보호구를 지급하여야 한다."},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "/"+DefaultModel+":generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	require.NotNil(t, gotBody.GenerationConfig)
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMIMEType)
	require.NotNil(t, gotBody.GenerationConfig.ResponseSchema)
	assert.Contains(t, gotBody.GenerationConfig.ResponseSchema.Required, "summary_stats")

	require.NotNil(t, gotBody.SystemInstruction)
	require.Len(t, gotBody.Contents, 1)
	prompt := gotBody.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "야간 상하차")
	assert.Contains(t, prompt, "제38조")

	require.Len(t, report.Checklist, 1)
	assert.Equal(t, domain.StatusFail, report.Checklist[0].Status)
	assert.Equal(t, 1, report.SummaryStats.FailCount)
}

func TestAnalyze_MissingSection(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		// No summary_stats section.
		writeResponse(w, candidateResponse(`{
			"checklist": [],
			"risk_assessment": {"overview": "개요"},
			"compliance_evaluation": {"summary": "요약"}
		}`))
	})

	_, err := p.Analyze(context.Background(), ai.AnalyzeParams{
		Scenario: domain.ScenarioInput{WorkType: "용접"},
	})

	assert.ErrorIs(t, err, ai.EAIMalformed)
}

func TestAnalyze_NonJSONPayload(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, candidateResponse("죄송하지만 JSON으로 답할 수 없습니다."))
	})

	_, err := p.Analyze(context.Background(), ai.AnalyzeParams{
		Scenario: domain.ScenarioInput{WorkType: "용접"},
	})

	assert.ErrorIs(t, err, ai.EAIMalformed)
}

func TestAnalyze_EmptyCandidates(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, map[string]interface{}{"candidates": []interface{}{}})
	})

	_, err := p.Analyze(context.Background(), ai.AnalyzeParams{
		Scenario: domain.ScenarioInput{WorkType: "용접"},
	})

	assert.ErrorIs(t, err, ai.EAIEmptyResponse)
}

func TestAnalyze_HTTPErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, ai.EAIUnauthorized},
		{"forbidden", http.StatusForbidden, ai.EAIUnauthorized},
		{"rate limited", http.StatusTooManyRequests, ai.EAIRateLimit},
		{"gateway timeout", http.StatusGatewayTimeout, ai.EAITimeout},
		{"unavailable", http.StatusServiceUnavailable, ai.EAIUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error": {"code": 0, "message": "nope", "status": "ERROR"}}`))
			})

			_, err := p.Analyze(context.Background(), ai.AnalyzeParams{
				Scenario: domain.ScenarioInput{WorkType: "용접"},
			})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestChat(t *testing.T) {
	var gotBody apiRequest

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		writeResponse(w, candidateResponse("안전모는 사업주가 지급해야 합니다."))
	})

	text, err := p.Chat(context.Background(), ai.ChatParams{
		Message: "안전모는 누가 지급하나요?",
		History: []domain.ChatMessage{
			{Role: domain.ChatRoleUser, Text: "이전 질문"},
			{Role: domain.ChatRoleModel, Text: "이전 답변"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "안전모는 사업주가 지급해야 합니다.", text)

	// Chat requests carry no structured output schema.
	assert.Nil(t, gotBody.GenerationConfig)

	require.Len(t, gotBody.Contents, 1)
	prompt := gotBody.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "안전모는 누가 지급하나요?")
	assert.Contains(t, prompt, "이전 질문")
}

func TestChat_EmptyReply(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, candidateResponse("   "))
	})

	_, err := p.Chat(context.Background(), ai.ChatParams{Message: "질문"})

	assert.ErrorIs(t, err, ai.EAIEmptyResponse)
}

func writeResponse(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
