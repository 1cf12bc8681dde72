package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ralastessh/Industry-service/internal/domain"
)

// Provider defines the interface for AI-powered compliance analysis.
//
// Implementations are substitutable: the production provider talks to an
// external generative service, while the mock provider returns deterministic
// responses for tests and development.
type Provider interface {
	// Analyze submits a work scenario with the legal reference context and a
	// strict output schema, and returns the structured compliance report.
	Analyze(ctx context.Context, params AnalyzeParams) (*domain.AnalysisReport, error)

	// Chat sends a free-form message with conversation history and returns
	// the raw text reply.
	Chat(ctx context.Context, params ChatParams) (string, error)
}

// AnalyzeParams contains parameters for scenario analysis.
type AnalyzeParams struct {
	Scenario domain.ScenarioInput // The scenario to analyze
	Context  []domain.LegalChunk  // Legal reference excerpts embedded into the prompt
}

// ChatParams contains parameters for a chat turn.
type ChatParams struct {
	Message string               // The user's message
	History []domain.ChatMessage // Prior turns; the caller bounds this window
	Context []domain.LegalChunk  // Legal reference excerpts embedded into the prompt
}

// UsageInfo tracks API usage for monitoring.
type UsageInfo struct {
	Model        string        // AI model used
	InputTokens  int           // Tokens in the request
	OutputTokens int           // Tokens in the response
	Duration     time.Duration // Request duration
}

// ProviderConfig contains common configuration for AI providers.
type ProviderConfig struct {
	RequestTimeout time.Duration // Timeout for individual requests
}

// Error codes for AI provider operations
var (
	// EAIRateLimit indicates the API rate limit has been exceeded
	EAIRateLimit = errors.New("ai provider rate limit exceeded")

	// EAIMalformed indicates the response did not match the declared schema
	EAIMalformed = errors.New("ai response does not match declared schema")

	// EAIEmptyResponse indicates the service returned no usable text
	EAIEmptyResponse = errors.New("ai response contained no usable text")

	// EAITimeout indicates the request timed out
	EAITimeout = errors.New("ai request timed out")

	// EAIUnavailable indicates the AI service is temporarily unavailable
	EAIUnavailable = errors.New("ai service temporarily unavailable")

	// EAIUnauthorized indicates invalid API credentials
	EAIUnauthorized = errors.New("ai provider authentication failed")
)

// IsMalformed returns true if the error indicates a schema-mismatched or
// unparseable response, as opposed to a transport failure.
func IsMalformed(err error) bool {
	return errors.Is(err, EAIMalformed)
}

// WrapError wraps an error with context about the AI operation.
func WrapError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("ai %s: %w", operation, err)
}
