package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"memory-agent/internal/project/repository"
	"memory-agent/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQLite-backed Repository for projects and threads.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("project/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("project/repository/sqlite.%s", method)
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

type rowScanner interface {
	Scan(dest ...any) error
}
