// Package service contains the business logic layer.
//
// This file implements the chat service for the conversational compliance
// assistant. The thread lives in the session store; the provider only ever
// sees a bounded window of recent turns.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Ralastessh/Industry-service/internal/ai"
	"github.com/Ralastessh/Industry-service/internal/corpus"
	"github.com/Ralastessh/Industry-service/internal/domain"
	"github.com/Ralastessh/Industry-service/internal/metrics"
	"github.com/Ralastessh/Industry-service/internal/session"
)

// chatHistoryWindow bounds how many prior turns are forwarded to the AI
// provider with each message.
const chatHistoryWindow = 5

// chatFallbackReply is appended as the model turn when the provider fails,
// so the thread never ends on an unanswered user message.
const chatFallbackReply = "죄송합니다. 답변을 생성할 수 없습니다."

// =============================================================================
// Interface Definition
// =============================================================================

// ChatService defines the interface for the conversational assistant.
type ChatService interface {
	// Send appends the user's message to the thread, asks the provider for
	// a reply, and appends that reply as the model turn. Provider failures
	// degrade to a fallback reply instead of an error; the thread always
	// gains exactly two turns. Returns domain.EINVALID for an empty message.
	Send(ctx context.Context, message string) (*domain.ChatMessage, error)

	// History returns the full session thread in chronological order.
	History() []domain.ChatMessage
}

// =============================================================================
// Implementation
// =============================================================================

// chatService implements the ChatService interface.
type chatService struct {
	provider ai.Provider
	corpus   *corpus.Corpus
	store    *session.Store
	topK     int
	logger   *slog.Logger
}

// NewChatService creates a new ChatService. topK bounds how many legal
// chunks are retrieved per message.
func NewChatService(
	provider ai.Provider,
	corpus *corpus.Corpus,
	store *session.Store,
	topK int,
	logger *slog.Logger,
) ChatService {
	return &chatService{
		provider: provider,
		corpus:   corpus,
		store:    store,
		topK:     topK,
		logger:   logger,
	}
}

// Send processes one chat turn.
func (s *chatService) Send(ctx context.Context, message string) (*domain.ChatMessage, error) {
	const op = "chat.send"

	if strings.TrimSpace(message) == "" {
		return nil, domain.Invalid(op, "message is required")
	}

	// The history window is captured before the user turn is appended, so
	// the provider never sees the current message twice.
	history := lastTurns(s.store.ChatHistory(), chatHistoryWindow)

	s.store.AppendChat(domain.ChatMessage{Role: domain.ChatRoleUser, Text: message})
	metrics.ChatMessagesTotal.WithLabelValues(string(domain.ChatRoleUser)).Inc()

	legalContext := s.corpus.Search(message, s.topK)

	start := time.Now()
	text, err := s.provider.Chat(ctx, ai.ChatParams{
		Message: message,
		History: history,
		Context: legalContext,
	})

	reply := domain.ChatMessage{Role: domain.ChatRoleModel, Text: text}
	if err != nil {
		s.logger.Error("chat reply failed, degrading to fallback",
			"op", op,
			"duration", time.Since(start),
			"error", err)
		reply.Text = chatFallbackReply
	} else {
		reply.LegalBasis = legalBasisFrom(legalContext)
		s.logger.Info("chat reply generated",
			"op", op,
			"history_turns", len(history),
			"context_chunks", len(legalContext),
			"duration", time.Since(start))
	}

	s.store.AppendChat(reply)
	metrics.ChatMessagesTotal.WithLabelValues(string(domain.ChatRoleModel)).Inc()

	return &reply, nil
}

// History returns the full session thread.
func (s *chatService) History() []domain.ChatMessage {
	return s.store.ChatHistory()
}

// lastTurns returns at most n trailing messages.
func lastTurns(msgs []domain.ChatMessage, n int) []domain.ChatMessage {
	if len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}

// legalBasisFrom lists the clause paths of the retrieved chunks so the
// reply can cite what it was grounded on.
func legalBasisFrom(chunks []domain.LegalChunk) []string {
	if len(chunks) == 0 {
		return nil
	}
	refs := make([]string, 0, len(chunks))
	for _, c := range chunks {
		ref := c.DocTitle
		if c.ClausePath != "" {
			ref += " " + c.ClausePath
		}
		refs = append(refs, ref)
	}
	return refs
}
