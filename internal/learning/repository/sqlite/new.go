package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"kodi-assistant/internal/learning/repository"
	"kodi-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the learning domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("learning/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("learning/repository/sqlite.%s", method)
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
