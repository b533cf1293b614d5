package repository

import (
	"context"

	"memory-agent/internal/model"
)

// Repository is the composed interface for the memory data store.
type Repository interface {
	ThreadRepository
	EntryRepository
	SemanticRepository

	// Begin starts the unit of work that persists one successful run.
	Begin(ctx context.Context) (UnitOfWork, error)
}

// ThreadRepository reads threads. Thread lifecycle belongs to the project domain.
type ThreadRepository interface {
	// GetThread returns a zero Thread (ID == "") when not found.
	GetThread(ctx context.Context, id string) (model.Thread, error)
}

// EntryRepository reads committed chat turns.
type EntryRepository interface {
	// ListEntries returns a thread's entries newest first.
	ListEntries(ctx context.Context, opt ListEntriesOptions) ([]model.MemoryEntry, error)
}

// SemanticRepository reads and maintains the semantic memory of threads.
type SemanticRepository interface {
	SearchSimilar(ctx context.Context, opt SearchSimilarOptions) ([]model.ScoredMemory, error)
	ListSemantic(ctx context.Context, opt ListSemanticOptions) ([]model.SemanticMemoryEntry, error)
	UpdateEmbedding(ctx context.Context, opt UpdateEmbeddingOptions) error
}

// UnitOfWork stages writes until Commit. Rollback after Commit is a no-op,
// so callers can always defer it.
type UnitOfWork interface {
	AppendEntry(ctx context.Context, opt AppendEntryOptions) error
	InsertSemantic(ctx context.Context, opt InsertSemanticOptions) error
	Commit() error
	Rollback() error
}
