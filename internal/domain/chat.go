package domain

// =============================================================================
// Chat Types
// =============================================================================

// ChatRole identifies the author of a chat turn.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// Valid returns true if the role is a recognized value.
func (r ChatRole) Valid() bool {
	return r == ChatRoleUser || r == ChatRoleModel
}

// ChatMessage is one turn in the session-scoped conversation thread.
// The thread is append-only; messages are never mutated or deleted.
type ChatMessage struct {
	Role       ChatRole `json:"role"`
	Text       string   `json:"text"`
	LegalBasis []string `json:"legalBasis,omitempty"`
}
