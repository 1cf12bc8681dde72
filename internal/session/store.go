// Package session holds the in-memory, process-lifetime working state:
// the analysis history and the chat thread. Nothing here survives a
// restart; persistence is a deliberate non-feature of this service.
package session

import (
	"sync"

	"github.com/Ralastessh/Industry-service/internal/domain"
)

// Store is the mutex-guarded session container shared by the analysis and
// chat services. The zero value is not usable; construct with NewStore.
type Store struct {
	mu       sync.RWMutex
	analyses []domain.AnalysisResult
	chat     []domain.ChatMessage
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{}
}

// AppendAnalysis records a completed analysis. Results are kept most recent
// first, matching the order the history endpoints serve them in.
func (s *Store) AppendAnalysis(result domain.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses = append([]domain.AnalysisResult{result}, s.analyses...)
}

// Analyses returns a copy of the analysis history, most recent first.
func (s *Store) Analyses() []domain.AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AnalysisResult, len(s.analyses))
	copy(out, s.analyses)
	return out
}

// AnalysisByID returns the analysis with the given id, or ENOTFOUND.
func (s *Store) AnalysisByID(id string) (*domain.AnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.analyses {
		if s.analyses[i].ID == id {
			result := s.analyses[i]
			return &result, nil
		}
	}
	return nil, domain.NotFound("session.analysis_by_id", "analysis", id)
}

// AppendChat appends one turn to the chat thread. The thread is append-only.
func (s *Store) AppendChat(msg domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, msg)
}

// ChatHistory returns a copy of the chat thread in chronological order.
func (s *Store) ChatHistory() []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ChatMessage, len(s.chat))
	copy(out, s.chat)
	return out
}
