package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"memory-agent/internal/profile/repository"
	"memory-agent/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQLite-backed Repository for prompt profiles.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("profile/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("profile/repository/sqlite.%s", method)
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
