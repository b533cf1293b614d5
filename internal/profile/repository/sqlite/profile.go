package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"memory-agent/internal/model"
	repo "memory-agent/internal/profile/repository"
)

const profileColumns = `id, agent_type, template, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(s rowScanner) (model.PromptProfile, error) {
	var (
		p                model.PromptProfile
		created, updated int64
	)
	if err := s.Scan(&p.ID, &p.AgentType, &p.Template, &created, &updated); err != nil {
		return model.PromptProfile{}, err
	}
	p.CreatedAt = time.Unix(0, created).UTC()
	p.UpdatedAt = time.Unix(0, updated).UTC()
	return p, nil
}

func (r *implRepository) CreateProfile(ctx context.Context, opt repo.CreateProfileOptions) (model.PromptProfile, error) {
	const query = `
		INSERT INTO prompt_profiles (id, agent_type, template, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING ` + profileColumns

	now := r.now().UTC().UnixNano()
	p, err := scanProfile(r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.AgentType, opt.Template, now, now))
	if isUniqueViolation(err) {
		return model.PromptProfile{}, repo.ErrDuplicate
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProfile"), err)
		return model.PromptProfile{}, repo.ErrFailedToInsert
	}
	return p, nil
}

func (r *implRepository) GetProfile(ctx context.Context, agentType string) (model.PromptProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM prompt_profiles WHERE agent_type = ?`

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, agentType))
	if errors.Is(err, sql.ErrNoRows) {
		return model.PromptProfile{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProfile"), err)
		return model.PromptProfile{}, repo.ErrFailedToGet
	}
	return p, nil
}

func (r *implRepository) ListProfiles(ctx context.Context) ([]model.PromptProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM prompt_profiles ORDER BY agent_type`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProfiles"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	profiles := []model.PromptProfile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListProfiles"), err)
			return nil, repo.ErrFailedToList
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return profiles, nil
}

func (r *implRepository) UpdateProfile(ctx context.Context, opt repo.UpdateProfileOptions) (model.PromptProfile, error) {
	const query = `
		UPDATE prompt_profiles SET template = ?, updated_at = ?
		WHERE agent_type = ?
		RETURNING ` + profileColumns

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, opt.Template, r.now().UTC().UnixNano(), opt.AgentType))
	if errors.Is(err, sql.ErrNoRows) {
		return model.PromptProfile{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProfile"), err)
		return model.PromptProfile{}, repo.ErrFailedToUpdate
	}
	return p, nil
}

func (r *implRepository) DeleteProfile(ctx context.Context, agentType string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM prompt_profiles WHERE agent_type = ?`, agentType)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteProfile"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}
