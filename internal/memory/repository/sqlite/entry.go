package sqlite

import (
	"context"

	repo "memory-agent/internal/memory/repository"
	"memory-agent/internal/model"
)

// ListEntries returns one page of a thread's history, newest first.
// Entries written in the same nanosecond keep insertion order via id.
func (r *implRepository) ListEntries(ctx context.Context, opt repo.ListEntriesOptions) ([]model.MemoryEntry, error) {
	const query = `
		SELECT id, thread_id, role, content, created_at
		FROM memory_entries
		WHERE thread_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`

	limit := opt.Limit
	if limit <= 0 {
		limit = -1
	}
	offset := opt.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.QueryContext(ctx, query, opt.ThreadID, limit, offset)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEntries"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	entries := []model.MemoryEntry{}
	for rows.Next() {
		var (
			e       model.MemoryEntry
			role    string
			created int64
		)
		if err := rows.Scan(&e.ID, &e.ThreadID, &role, &e.Content, &created); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEntries"), err)
			return nil, repo.ErrFailedToList
		}
		e.Role = model.Role(role)
		e.CreatedAt = fromUnixNano(created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEntries"), err)
		return nil, repo.ErrFailedToList
	}
	return entries, nil
}
