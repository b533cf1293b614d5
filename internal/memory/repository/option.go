package repository

import "memory-agent/internal/model"

// ListEntriesOptions selects one page of a thread's history.
type ListEntriesOptions struct {
	ThreadID string
	Limit    int
	Offset   int
}

// SearchSimilarOptions holds the query for a semantic scan of one thread.
type SearchSimilarOptions struct {
	ThreadID  string
	Embedding []float32
	TopN      int
}

// ListSemanticOptions pages through semantic entries in insertion order.
// An empty ThreadID lists every thread.
type ListSemanticOptions struct {
	ThreadID string
	Limit    int
	Offset   int
}

type UpdateEmbeddingOptions struct {
	ID        string
	Embedding []float32
}

type AppendEntryOptions struct {
	ThreadID string
	Role     model.Role
	Content  string
}

type InsertSemanticOptions struct {
	ThreadID  string
	Content   string
	Embedding []float32
}
