package postgre

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"kodi-assistant/internal/learning/repository"
	"kodi-assistant/pkg/log"
	"kodi-assistant/pkg/postgres"
)

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates a new PostgreSQL-backed Repository for the learning domain.
func New(pool *pgxpool.Pool, l log.Logger) repository.Repository {
	if pool == nil {
		panic("learning/repository/postgre: pool is required")
	}
	return &implRepository{pool: pool, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("learning/repository/postgre.%s", method)
}

func (r *implRepository) Ping(ctx context.Context) error {
	return postgres.Ping(ctx, r.pool, 3*time.Second)
}
