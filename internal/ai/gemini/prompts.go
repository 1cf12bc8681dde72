package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Ralastessh/Industry-service/internal/domain"
)

// systemPrompt is the instruction shared by both request paths. The chat
// path appends a conversational register on top of it.
const systemPrompt = `당신은 산업안전보건법, 중대재해처벌법 및 ISO 45001 기반 안전보건 컴플라이언스 전문 분석가입니다.
제공된 법령 컨텍스트에 근거하여 작업 시나리오를 평가하고, 모든 판정에 구체적인 법령 명칭과 조항 번호를 인용하십시오.
근거가 부족한 내용은 추측하지 말고 근거 부족으로 표시하십시오.`

const chatInstruction = "\n대화형으로 답하고 전문적이지만 쉬운 용어를 사용하세요."

// buildAnalysisPrompt embeds the five scenario fields and the legal
// reference context into the analysis request.
func buildAnalysisPrompt(scenario domain.ScenarioInput, context []domain.LegalChunk) string {
	var b strings.Builder

	b.WriteString("다음 시나리오를 분석하십시오:\n")
	fmt.Fprintf(&b, "- 작업유형: %s\n", scenario.WorkType)
	fmt.Fprintf(&b, "- 인력구성: %s\n", scenario.Workforce)
	fmt.Fprintf(&b, "- 사용장비: %s\n", scenario.Equipment)
	fmt.Fprintf(&b, "- 작업환경: %s\n", scenario.Environment)
	fmt.Fprintf(&b, "- 추가정보: %s\n", scenario.OptionalText)

	b.WriteString("\n참고할 법령 컨텍스트:\n")
	b.WriteString(formatLegalContext(context))

	b.WriteString("\n\n중요: 각 체크리스트 항목에 대해 해당 판정의 근거가 되는 구체적인 법령 명칭과 조항 번호(legal_basis)를 반드시 포함하십시오.")

	return b.String()
}

// buildChatPrompt embeds the user message, the legal context, and the prior
// conversation turns into a single user-content block. The caller has
// already bounded the history window.
func buildChatPrompt(message string, history []domain.ChatMessage, context []domain.LegalChunk) string {
	var b strings.Builder

	b.WriteString("컨텍스트:\n")
	b.WriteString(formatLegalContext(context))
	fmt.Fprintf(&b, "\n\n사용자 메시지: %s\n", message)

	if len(history) > 0 {
		// Prior turns ride along as JSON so roles survive round-tripping.
		raw, err := json.Marshal(history)
		if err == nil {
			fmt.Fprintf(&b, "\n이전 대화 내용: %s\n", raw)
		}
	}

	return b.String()
}

// formatLegalContext renders the reference chunks as a bracketed block per
// excerpt, so the model can cite them by document and clause.
func formatLegalContext(chunks []domain.LegalChunk) string {
	if len(chunks) == 0 {
		return "(제공된 법령 컨텍스트 없음)"
	}

	parts := make([]string, 0, len(chunks))
	for i, c := range chunks {
		header := fmt.Sprintf("[C%d] %s / %s / %s", i+1, c.DocTitle, c.DocType, c.ClausePath)
		parts = append(parts, header+"\n"+strings.TrimSpace(c.Text))
	}
	return strings.Join(parts, "\n\n---\n\n")
}
