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

const projectColumns = `id, name, created_at`

func scanProject(s rowScanner) (model.Project, error) {
	var (
		p       model.Project
		created int64
	)
	if err := s.Scan(&p.ID, &p.Name, &created); err != nil {
		return model.Project{}, err
	}
	p.CreatedAt = time.Unix(0, created).UTC()
	return p, nil
}

func (r *implRepository) CreateProject(ctx context.Context, opt repo.CreateProjectOptions) (model.Project, error) {
	const query = `INSERT INTO projects (id, name, created_at) VALUES (?, ?, ?) RETURNING ` + projectColumns

	p, err := scanProject(r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.Name, r.now().UTC().UnixNano()))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProject"), err)
		return model.Project{}, repo.ErrFailedToInsert
	}
	return p, nil
}

func (r *implRepository) GetProject(ctx context.Context, id string) (model.Project, error) {
	return r.getProject(ctx, "GetProject", `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
}

func (r *implRepository) FindProjectByName(ctx context.Context, name string) (model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE name = ? ORDER BY created_at, id LIMIT 1`
	return r.getProject(ctx, "FindProjectByName", query, name)
}

func (r *implRepository) getProject(ctx context.Context, method, query string, arg any) (model.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return model.Project{}, repo.ErrFailedToGet
	}
	return p, nil
}

func (r *implRepository) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at, id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProjects"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListProjects"), err)
			return nil, repo.ErrFailedToList
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return projects, nil
}
