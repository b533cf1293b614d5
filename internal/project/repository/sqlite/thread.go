package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"memory-agent/internal/model"
	repo "memory-agent/internal/project/repository"
)

const threadColumns = `id, project_id, name, created_at`

func scanThread(s rowScanner) (model.Thread, error) {
	var (
		t       model.Thread
		created int64
	)
	if err := s.Scan(&t.ID, &t.ProjectID, &t.Name, &created); err != nil {
		return model.Thread{}, err
	}
	t.CreatedAt = time.Unix(0, created).UTC()
	return t, nil
}

func (r *implRepository) CreateThread(ctx context.Context, opt repo.CreateThreadOptions) (model.Thread, error) {
	const query = `
		INSERT INTO threads (id, project_id, name, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING ` + threadColumns

	t, err := scanThread(r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.ProjectID, opt.Name, r.now().UTC().UnixNano()))
	if isForeignKeyViolation(err) {
		return model.Thread{}, repo.ErrUnknownProject
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateThread"), err)
		return model.Thread{}, repo.ErrFailedToInsert
	}
	return t, nil
}

func (r *implRepository) GetThread(ctx context.Context, id string) (model.Thread, error) {
	t, err := scanThread(r.db.QueryRowContext(ctx, `SELECT `+threadColumns+` FROM threads WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Thread{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetThread"), err)
		return model.Thread{}, repo.ErrFailedToGet
	}
	return t, nil
}

func (r *implRepository) ListThreads(ctx context.Context, opt repo.ListThreadsOptions) ([]model.Thread, error) {
	query := `SELECT ` + threadColumns + ` FROM threads WHERE project_id = ? ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, opt.ProjectID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListThreads"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	threads := []model.Thread{}
	for rows.Next() {
		t, err := scanThread(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListThreads"), err)
			return nil, repo.ErrFailedToList
		}
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return threads, nil
}
