package sqlite

import (
	"context"
	"database/sql"
	"errors"

	repo "memory-agent/internal/memory/repository"
	"memory-agent/internal/model"
)

// GetThread returns a zero-value Thread when the id is unknown.
func (r *implRepository) GetThread(ctx context.Context, id string) (model.Thread, error) {
	const query = `SELECT id, project_id, name, created_at FROM threads WHERE id = ?`

	var (
		t       model.Thread
		created int64
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.ProjectID, &t.Name, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Thread{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetThread"), err)
		return model.Thread{}, repo.ErrFailedToGet
	}
	t.CreatedAt = fromUnixNano(created)
	return t, nil
}
