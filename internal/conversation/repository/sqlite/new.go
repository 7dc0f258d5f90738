package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"kodi-assistant/internal/conversation/repository"
	"kodi-assistant/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a new SQLite-backed Repository for the conversation domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("conversation/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/sqlite.%s", method)
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
