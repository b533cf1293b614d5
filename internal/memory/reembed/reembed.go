// Package reembed recomputes the stored embeddings of semantic memory,
// typically after the embedding model changed.
package reembed

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"memory-agent/internal/memory/repository"
	"memory-agent/internal/model"
	"memory-agent/pkg/embedding"
	"memory-agent/pkg/log"
)

const (
	DefaultBatchSize = 32
	DefaultWorkers   = 4
)

type Options struct {
	// ThreadID limits the run to one thread. Empty means every thread.
	ThreadID  string
	BatchSize int
	Workers   int
}

type Stats struct {
	Updated int
	Failed  int
}

// Store is the subset of the memory repository used by Run.
type Store interface {
	ListSemantic(ctx context.Context, opt repository.ListSemanticOptions) ([]model.SemanticMemoryEntry, error)
	UpdateEmbedding(ctx context.Context, opt repository.UpdateEmbeddingOptions) error
}

// Run pages through the semantic entries and re-embeds each page as one
// batch. Up to opt.Workers batches are in flight at once. A failed batch is
// counted and logged; listing failures abort the run.
func Run(ctx context.Context, l log.Logger, store Store, embedder embedding.Embedder, opt Options) (Stats, error) {
	if opt.BatchSize <= 0 {
		opt.BatchSize = DefaultBatchSize
	}
	if opt.Workers <= 0 {
		opt.Workers = DefaultWorkers
	}

	var updated, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opt.Workers)

	for offset := 0; ; offset += opt.BatchSize {
		batch, err := store.ListSemantic(gctx, repository.ListSemanticOptions{
			ThreadID: opt.ThreadID,
			Limit:    opt.BatchSize,
			Offset:   offset,
		})
		if err != nil {
			_ = g.Wait()
			return Stats{Updated: int(updated.Load()), Failed: int(failed.Load())}, fmt.Errorf("reembed: list at offset %d: %w", offset, err)
		}
		if len(batch) == 0 {
			break
		}

		g.Go(func() error {
			n, err := embedBatch(gctx, store, embedder, batch)
			updated.Add(int64(n))
			if err != nil {
				failed.Add(int64(len(batch) - n))
				l.Warnf(gctx, "reembed.Run: batch at offset %d: %v", offset, err)
			}
			return gctx.Err()
		})

		if len(batch) < opt.BatchSize {
			break
		}
	}

	err := g.Wait()
	stats := Stats{Updated: int(updated.Load()), Failed: int(failed.Load())}
	if err != nil {
		return stats, err
	}
	l.Infof(ctx, "reembed.Run: updated %d entries, %d failed", stats.Updated, stats.Failed)
	return stats, nil
}

func embedBatch(ctx context.Context, store Store, embedder embedding.Embedder, batch []model.SemanticMemoryEntry) (int, error) {
	texts := make([]string, len(batch))
	for i, e := range batch {
		texts[i] = e.Content
	}

	vectors, err := embedder.Embed(ctx, texts)
	if err != nil {
		return 0, err
	}
	if len(vectors) != len(batch) {
		return 0, fmt.Errorf("got %d vectors for %d texts", len(vectors), len(batch))
	}

	done := 0
	for i, e := range batch {
		if err := store.UpdateEmbedding(ctx, repository.UpdateEmbeddingOptions{ID: e.ID, Embedding: vectors[i]}); err != nil {
			return done, fmt.Errorf("update %s: %w", e.ID, err)
		}
		done++
	}
	return done, nil
}
