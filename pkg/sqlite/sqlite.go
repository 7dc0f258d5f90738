package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS user_learning (
	user_id           TEXT PRIMARY KEY,
	topics            TEXT NOT NULL DEFAULT '[]',
	preferences       TEXT NOT NULL DEFAULT '{}',
	interaction_count INTEGER NOT NULL DEFAULT 0,
	created_at        TEXT NOT NULL,
	last_updated      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS conversations (
	id            TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL,
	session_id    TEXT NOT NULL,
	user_message  TEXT NOT NULL,
	ai_response   TEXT NOT NULL,
	chat_history  TEXT NOT NULL DEFAULT '[]',
	created_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_conversations_user_created ON conversations(user_id, created_at DESC, id DESC);
`

// Open opens or creates a SQLite database at path and applies the schema.
// Write transactions take the database lock up front (_txlock=immediate) so a
// read-modify-write cannot interleave with another writer.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("sqlite: create db dir: %w", err)
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(wal)&_pragma=foreign_keys(on)&_txlock=immediate"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}

	return db, nil
}

// Ping verifies the database is reachable.
func Ping(ctx context.Context, db *sql.DB) error {
	return db.PingContext(ctx)
}
