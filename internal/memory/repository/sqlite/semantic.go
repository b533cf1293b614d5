package sqlite

import (
	"context"
	"database/sql"

	repo "memory-agent/internal/memory/repository"
	"memory-agent/internal/model"
	"memory-agent/pkg/vector"
)

const semanticColumns = `id, thread_id, content, embedding, created_at`

// SearchSimilar scans the thread's semantic entries and ranks them by cosine
// similarity. Vectors of another dimensionality never match.
func (r *implRepository) SearchSimilar(ctx context.Context, opt repo.SearchSimilarOptions) ([]model.ScoredMemory, error) {
	if opt.TopN <= 0 || len(opt.Embedding) == 0 {
		return []model.ScoredMemory{}, nil
	}

	query := `SELECT ` + semanticColumns + ` FROM semantic_memory_entries
		WHERE thread_id = ? AND dimensions = ?
		ORDER BY created_at, rowid`

	rows, err := r.db.QueryContext(ctx, query, opt.ThreadID, len(opt.Embedding))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SearchSimilar"), err)
		return nil, repo.ErrFailedToList
	}
	entries, err := r.scanSemantic(ctx, rows, "SearchSimilar")
	if err != nil {
		return nil, err
	}

	candidates := make([]vector.Candidate[model.SemanticMemoryEntry], len(entries))
	for i, e := range entries {
		candidates[i] = vector.Candidate[model.SemanticMemoryEntry]{Item: e, Embedding: e.Embedding}
	}

	ranked := vector.Rank(opt.Embedding, candidates, opt.TopN)
	out := make([]model.ScoredMemory, len(ranked))
	for i, s := range ranked {
		out[i] = model.ScoredMemory{Entry: s.Item, Score: s.Score}
	}
	return out, nil
}

// ListSemantic pages through semantic entries in insertion order.
func (r *implRepository) ListSemantic(ctx context.Context, opt repo.ListSemanticOptions) ([]model.SemanticMemoryEntry, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = -1
	}

	var (
		rows *sql.Rows
		err  error
	)
	if opt.ThreadID == "" {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+semanticColumns+` FROM semantic_memory_entries
			 ORDER BY thread_id, created_at, rowid LIMIT ? OFFSET ?`,
			limit, opt.Offset)
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+semanticColumns+` FROM semantic_memory_entries
			 WHERE thread_id = ? ORDER BY created_at, rowid LIMIT ? OFFSET ?`,
			opt.ThreadID, limit, opt.Offset)
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSemantic"), err)
		return nil, repo.ErrFailedToList
	}
	return r.scanSemantic(ctx, rows, "ListSemantic")
}

// UpdateEmbedding replaces the stored vector of one entry.
func (r *implRepository) UpdateEmbedding(ctx context.Context, opt repo.UpdateEmbeddingOptions) error {
	if len(opt.Embedding) == 0 {
		return repo.ErrEmptyEmbedding
	}

	const query = `UPDATE semantic_memory_entries SET embedding = ?, dimensions = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, vector.Encode(opt.Embedding), len(opt.Embedding), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEmbedding"), err)
		return repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repo.ErrEntryNotFound
	}
	return nil
}

func (r *implRepository) scanSemantic(ctx context.Context, rows *sql.Rows, method string) ([]model.SemanticMemoryEntry, error) {
	defer rows.Close()

	entries := []model.SemanticMemoryEntry{}
	for rows.Next() {
		var (
			e       model.SemanticMemoryEntry
			blob    []byte
			created int64
		)
		if err := rows.Scan(&e.ID, &e.ThreadID, &e.Content, &blob, &created); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repo.ErrFailedToList
		}
		emb, err := vector.Decode(blob)
		if err != nil {
			// A corrupt row is skipped rather than failing the whole scan.
			r.l.Warnf(ctx, "%s: entry %s: %v", r.dsn(method), e.ID, err)
			continue
		}
		e.Embedding = emb
		e.CreatedAt = fromUnixNano(created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	return entries, nil
}
