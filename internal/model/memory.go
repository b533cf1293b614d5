package model

import "time"

// Role tags a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Thread groups the chat history of one conversation.
type Thread struct {
	ID        string
	ProjectID string
	Name      string
	CreatedAt time.Time
}

// MemoryEntry is one committed chat turn. Entries are append-only.
type MemoryEntry struct {
	ID        int64 // insertion order, breaks created_at ties
	ThreadID  string
	Role      Role
	Content   string
	CreatedAt time.Time
}

// SemanticMemoryEntry is a stored fragment plus its embedding.
type SemanticMemoryEntry struct {
	ID        string
	ThreadID  string
	Content   string
	Embedding []float32
	CreatedAt time.Time
}

// ScoredMemory is a semantic entry ranked against a query embedding.
type ScoredMemory struct {
	Entry SemanticMemoryEntry
	Score float64
}
