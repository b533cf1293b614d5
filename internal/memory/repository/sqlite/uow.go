package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	repo "memory-agent/internal/memory/repository"
	"memory-agent/pkg/vector"
)

// Begin opens a write transaction. The caller must not hold it across
// network calls.
func (r *implRepository) Begin(ctx context.Context) (repo.UnitOfWork, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Begin"), err)
		return nil, repo.ErrFailedToBegin
	}
	return &unitOfWork{r: r, tx: tx}, nil
}

type unitOfWork struct {
	r  *implRepository
	tx *sql.Tx
}

func (u *unitOfWork) AppendEntry(ctx context.Context, opt repo.AppendEntryOptions) error {
	const query = `INSERT INTO memory_entries (thread_id, role, content, created_at) VALUES (?, ?, ?, ?)`

	if _, err := u.tx.ExecContext(ctx, query, opt.ThreadID, string(opt.Role), opt.Content, u.r.now().UTC().UnixNano()); err != nil {
		u.r.l.Errorf(ctx, "%s: %v", u.r.dsn("AppendEntry"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

func (u *unitOfWork) InsertSemantic(ctx context.Context, opt repo.InsertSemanticOptions) error {
	if len(opt.Embedding) == 0 {
		return repo.ErrEmptyEmbedding
	}

	const query = `
		INSERT INTO semantic_memory_entries (id, thread_id, content, embedding, dimensions, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := u.tx.ExecContext(ctx, query,
		uuid.NewString(), opt.ThreadID, opt.Content,
		vector.Encode(opt.Embedding), len(opt.Embedding), u.r.now().UTC().UnixNano(),
	)
	if err != nil {
		u.r.l.Errorf(ctx, "%s: %v", u.r.dsn("InsertSemantic"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

func (u *unitOfWork) Commit() error {
	if err := u.tx.Commit(); err != nil {
		u.r.l.Errorf(context.Background(), "%s: %v", u.r.dsn("Commit"), err)
		return repo.ErrFailedToCommit
	}
	return nil
}

func (u *unitOfWork) Rollback() error {
	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}
