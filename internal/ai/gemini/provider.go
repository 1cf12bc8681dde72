package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Ralastessh/Industry-service/internal/ai"
	"github.com/Ralastessh/Industry-service/internal/domain"
	"github.com/Ralastessh/Industry-service/internal/metrics"
)

const (
	// APIBaseURL is the base URL for the Generative Language API
	APIBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	// DefaultModel is the default Gemini model to use
	DefaultModel = "gemini-3-flash-preview"

	// MaxOutputTokens bounds the response size for the analysis path
	MaxOutputTokens = 8192
)

// Config contains configuration for the Gemini provider.
type Config struct {
	APIKey         string
	Model          string
	BaseURL        string // Overridable for tests
	ProviderConfig ai.ProviderConfig
}

// Provider implements the ai.Provider interface against the Gemini
// generateContent REST API. Requests are not retried: a failed call is
// surfaced to the caller, who re-triggers manually.
type Provider struct {
	config Config
	client *http.Client
	logger *slog.Logger
}

// New creates a new Gemini AI provider.
func New(config Config, logger *slog.Logger) (*Provider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	// Set defaults
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.BaseURL == "" {
		config.BaseURL = APIBaseURL
	}
	if config.ProviderConfig.RequestTimeout == 0 {
		config.ProviderConfig.RequestTimeout = 60 * time.Second
	}

	return &Provider{
		config: config,
		client: &http.Client{
			Timeout: config.ProviderConfig.RequestTimeout,
		},
		logger: logger,
	}, nil
}

// Analyze submits a scenario with the declared output schema and parses the
// JSON payload into a structured compliance report.
func (p *Provider) Analyze(ctx context.Context, params ai.AnalyzeParams) (*domain.AnalysisReport, error) {
	startTime := time.Now()

	req, err := p.buildRequest(ctx, apiRequest{
		SystemInstruction: textContent("", systemPrompt),
		Contents: []apiContent{
			*textContent("user", buildAnalysisPrompt(params.Scenario, params.Context)),
		},
		GenerationConfig: &apiGenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   analysisResponseSchema(),
			MaxOutputTokens:  MaxOutputTokens,
		},
	})
	if err != nil {
		return nil, ai.WrapError("build request", err)
	}

	resp, err := p.executeRequest(req)
	if err != nil {
		metrics.AIAPICalls.WithLabelValues("analyze", "error").Inc()
		return nil, ai.WrapError("execute request", err)
	}

	report, err := p.parseAnalysisResponse(resp)
	if err != nil {
		metrics.AIAPICalls.WithLabelValues("analyze", "malformed").Inc()
		return nil, ai.WrapError("parse response", err)
	}

	metrics.AIAPICalls.WithLabelValues("analyze", "success").Inc()
	p.recordUsage(resp, time.Since(startTime), "analyze")

	return report, nil
}

// Chat sends a conversational message and returns the raw text reply.
func (p *Provider) Chat(ctx context.Context, params ai.ChatParams) (string, error) {
	startTime := time.Now()

	req, err := p.buildRequest(ctx, apiRequest{
		SystemInstruction: textContent("", systemPrompt+chatInstruction),
		Contents: []apiContent{
			*textContent("user", buildChatPrompt(params.Message, params.History, params.Context)),
		},
	})
	if err != nil {
		return "", ai.WrapError("build request", err)
	}

	resp, err := p.executeRequest(req)
	if err != nil {
		metrics.AIAPICalls.WithLabelValues("chat", "error").Inc()
		return "", ai.WrapError("execute request", err)
	}

	text := resp.text()
	if strings.TrimSpace(text) == "" {
		metrics.AIAPICalls.WithLabelValues("chat", "empty").Inc()
		return "", ai.WrapError("chat", ai.EAIEmptyResponse)
	}

	metrics.AIAPICalls.WithLabelValues("chat", "success").Inc()
	p.recordUsage(resp, time.Since(startTime), "chat")

	return text, nil
}

// buildRequest marshals the request body and creates the HTTP request.
func (p *Provider) buildRequest(ctx context.Context, body apiRequest) (*http.Request, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", p.config.BaseURL, p.config.Model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.config.APIKey)

	return req, nil
}

// executeRequest executes a single HTTP request.
func (p *Provider) executeRequest(req *http.Request) (*apiResponse, error) {
	resp, err := p.client.Do(req)
	if err != nil {
		// Network errors surface as unavailability
		return nil, ai.EAIUnavailable
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, p.mapHTTPError(resp.StatusCode, bodyBytes)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
		return nil, fmt.Errorf("%w: unmarshal response: %v", ai.EAIMalformed, err)
	}

	return &apiResp, nil
}

// mapHTTPError maps HTTP status codes to provider errors.
func (p *Provider) mapHTTPError(statusCode int, body []byte) error {
	var errResp apiErrorResponse
	_ = json.Unmarshal(body, &errResp)

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ai.EAIUnauthorized
	case http.StatusTooManyRequests:
		return ai.EAIRateLimit
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return ai.EAITimeout
	case http.StatusBadRequest:
		return fmt.Errorf("bad request: %s", errResp.Error.Message)
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return ai.EAIUnavailable
	default:
		return fmt.Errorf("API error (status %d): %s", statusCode, errResp.Error.Message)
	}
}

// parseAnalysisResponse parses the JSON text payload into a report.
//
// Pointer fields on the intermediate struct distinguish an absent section
// from an empty one, so a response missing any required section is rejected
// instead of silently defaulted.
func (p *Provider) parseAnalysisResponse(resp *apiResponse) (*domain.AnalysisReport, error) {
	text := resp.text()
	if strings.TrimSpace(text) == "" {
		return nil, ai.EAIEmptyResponse
	}

	var output analysisOutput
	if err := json.Unmarshal([]byte(text), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ai.EAIMalformed, err)
	}

	if output.Checklist == nil {
		return nil, fmt.Errorf("%w: missing checklist", ai.EAIMalformed)
	}
	if output.RiskAssessment == nil {
		return nil, fmt.Errorf("%w: missing risk_assessment", ai.EAIMalformed)
	}
	if output.ComplianceEvaluation == nil {
		return nil, fmt.Errorf("%w: missing compliance_evaluation", ai.EAIMalformed)
	}
	if output.SummaryStats == nil {
		return nil, fmt.Errorf("%w: missing summary_stats", ai.EAIMalformed)
	}

	return &domain.AnalysisReport{
		Checklist:            output.Checklist,
		RiskAssessment:       *output.RiskAssessment,
		ComplianceEvaluation: *output.ComplianceEvaluation,
		SummaryStats:         *output.SummaryStats,
	}, nil
}

// recordUsage logs and counts token usage reported by the API.
func (p *Provider) recordUsage(resp *apiResponse, duration time.Duration, operation string) {
	usage := resp.UsageMetadata
	metrics.AITokensTotal.WithLabelValues("input").Add(float64(usage.PromptTokenCount))
	metrics.AITokensTotal.WithLabelValues("output").Add(float64(usage.CandidatesTokenCount))

	p.logger.Debug("ai request complete",
		"operation", operation,
		"model", p.config.Model,
		"input_tokens", usage.PromptTokenCount,
		"output_tokens", usage.CandidatesTokenCount,
		"duration_ms", duration.Milliseconds(),
	)
}

// API request/response types

type apiRequest struct {
	SystemInstruction *apiContent         `json:"systemInstruction,omitempty"`
	Contents          []apiContent        `json:"contents"`
	GenerationConfig  *apiGenerationConfig `json:"generationConfig,omitempty"`
}

type apiContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text string `json:"text"`
}

func textContent(role, text string) *apiContent {
	return &apiContent{Role: role, Parts: []apiPart{{Text: text}}}
}

type apiGenerationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
}

type apiResponse struct {
	Candidates    []apiCandidate `json:"candidates"`
	UsageMetadata apiUsage       `json:"usageMetadata"`
}

// text returns the first text part of the first candidate, or "".
func (r *apiResponse) text() string {
	for _, c := range r.Candidates {
		for _, part := range c.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

type apiCandidate struct {
	Content      apiContent `json:"content"`
	FinishReason string     `json:"finishReason"`
}

type apiUsage struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

type apiErrorResponse struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// analysisOutput mirrors the declared response schema with optional
// sections so absence can be detected.
type analysisOutput struct {
	Checklist            []domain.ChecklistItem       `json:"checklist"`
	RiskAssessment       *domain.RiskAssessment       `json:"risk_assessment"`
	ComplianceEvaluation *domain.ComplianceEvaluation `json:"compliance_evaluation"`
	SummaryStats         *domain.SummaryStats         `json:"summary_stats"`
}
