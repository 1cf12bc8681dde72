package mock

import (
	"context"
	"log/slog"

	"github.com/Ralastessh/Industry-service/internal/ai"
	"github.com/Ralastessh/Industry-service/internal/domain"
)

// Provider is a mock AI provider for testing and development.
type Provider struct {
	logger *slog.Logger

	// Configurable responses for testing
	AnalyzeResponse *domain.AnalysisReport
	AnalyzeError    error
	ChatResponse    string
	ChatError       error

	// Call tracking for testing
	AnalyzeCalls int
	ChatCalls    int

	// Captured parameters from the most recent call
	LastAnalyzeParams ai.AnalyzeParams
	LastChatParams    ai.ChatParams
}

// New creates a new mock AI provider.
func New(logger *slog.Logger) *Provider {
	return &Provider{
		logger: logger,
	}
}

// Analyze returns a canned compliance report.
func (p *Provider) Analyze(ctx context.Context, params ai.AnalyzeParams) (*domain.AnalysisReport, error) {
	p.AnalyzeCalls++
	p.LastAnalyzeParams = params

	if p.AnalyzeError != nil {
		return nil, p.AnalyzeError
	}
	if p.AnalyzeResponse != nil {
		return p.AnalyzeResponse, nil
	}

	// Default canned response
	return &domain.AnalysisReport{
		Checklist: []domain.ChecklistItem{
			{
				ItemTitle:      "보호구 지급 및 착용 관리",
				Status:         domain.StatusFail,
				WhyItMatters:   "추락·낙하물 재해 시 치명상을 막는 최소한의 방어선이다.",
				RequiredAction: "전 작업자에게 안전모와 안전화를 지급하고 착용 상태를 매 교대 점검한다.",
				LegalBasis:     "산업안전보건법 제38조",
				Evidence:       []string{"보호구 지급 대장 부재", "단기 인력 착용 교육 미실시"},
			},
			{
				ItemTitle:      "지게차 작업계획서 작성",
				Status:         domain.StatusWarn,
				WhyItMatters:   "혼재 작업 구간의 충돌 재해는 작업계획 없이는 통제되지 않는다.",
				RequiredAction: "운행 경로와 신호 체계를 포함한 작업계획서를 작성하고 게시한다.",
				LegalBasis:     "산업안전보건기준에 관한 규칙 제38조",
				Evidence:       []string{"운행 동선 구획 미표시"},
			},
			{
				ItemTitle:      "관리감독자 지정",
				Status:         domain.StatusOK,
				WhyItMatters:   "현장 단위의 안전 책임 소재가 명확해진다.",
				RequiredAction: "현행 체계 유지",
				LegalBasis:     "산업안전보건법 제16조",
				Evidence:       []string{"지정 문서 확인됨"},
			},
		},
		RiskAssessment: domain.RiskAssessment{
			Overview:     "야간 혼재 작업 특성상 충돌 및 낙하물 위험이 상존하며, 보호구 관리 공백이 위험을 증폭시킨다.",
			Hazards:      []string{"지게차-보행자 충돌", "적재물 낙하", "야간 시야 저하"},
			Measures:     []string{"보행 통로 물리적 분리", "신호수 배치", "조도 기준 충족 조명 설치"},
			ResidualRisk: "보통 — 통제 조치 이행 시 허용 가능 수준",
			LegalBasis:   []string{"산업안전보건기준에 관한 규칙 제172조"},
		},
		ComplianceEvaluation: domain.ComplianceEvaluation{
			AppliedLaws: []string{"산업안전보건법", "중대재해처벌법", "ISO 45001"},
			Summary: "보호구 관리 공백으로 중대재해처벌법상 안전보건 확보의무 위반 소지가 있습니다.\n" +
				"- 안전모 미지급 상태로 야간 작업 진행 중\n" +
				"- 지게차 작업계획서 미작성\n" +
				"- Decision: 보호구 일괄 지급 및 작업계획서 수립 예산의 즉시 승인 필요",
			Improvements: []string{"보호구 지급 기준 문서화", "혼재 작업 통제 절차 수립"},
			LegalBasis:   []string{"산업안전보건법 제38조", "중대재해처벌법 제4조"},
		},
		SummaryStats: domain.SummaryStats{
			TotalItems:  3,
			FailCount:   1,
			WarnCount:   1,
			Top3Actions: []string{"보호구 즉시 지급", "지게차 작업계획서 작성", "보행 통로 분리"},
		},
	}, nil
}

// Chat returns a canned text reply.
func (p *Provider) Chat(ctx context.Context, params ai.ChatParams) (string, error) {
	p.ChatCalls++
	p.LastChatParams = params

	if p.ChatError != nil {
		return "", p.ChatError
	}
	if p.ChatResponse != "" {
		return p.ChatResponse, nil
	}

	return "안전모는 산업안전보건법 제38조에 따라 사업주가 지급해야 하는 보호구입니다.", nil
}

// Reset clears call counters and custom responses for testing.
func (p *Provider) Reset() {
	p.AnalyzeCalls = 0
	p.ChatCalls = 0
	p.AnalyzeResponse = nil
	p.AnalyzeError = nil
	p.ChatResponse = ""
	p.ChatError = nil
	p.LastAnalyzeParams = ai.AnalyzeParams{}
	p.LastChatParams = ai.ChatParams{}
}
