package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	repo "kodi-assistant/internal/learning/repository"
	"kodi-assistant/internal/model"
)

const selectLearning = `
	SELECT user_id, topics, preferences, interaction_count, created_at, last_updated
	FROM user_learning WHERE user_id = ?`

type rowScanner interface {
	Scan(dest ...any) error
}

// GetLearning returns a zero value record when userID has no profile.
func (r *implRepository) GetLearning(ctx context.Context, userID string) (model.LearningRecord, error) {
	record, err := scanLearning(r.db.QueryRowContext(ctx, selectLearning, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.LearningRecord{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetLearning"), err)
		return model.LearningRecord{}, repo.ErrFailedToGet
	}
	return record, nil
}

// UpsertLearning runs the read-modify-write in an immediate transaction.
func (r *implRepository) UpsertLearning(ctx context.Context, opt repo.UpsertLearningOptions) (model.LearningRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpsertLearning"), err)
		return model.LearningRecord{}, repo.ErrFailedToUpsert
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := scanLearning(tx.QueryRowContext(ctx, selectLearning, opt.UserID))
	found := true
	if errors.Is(err, sql.ErrNoRows) {
		found = false
	} else if err != nil {
		r.l.Errorf(ctx, "%s select: %v", r.dsn("UpsertLearning"), err)
		return model.LearningRecord{}, repo.ErrFailedToUpsert
	}

	next := opt.Apply(existing, found)
	next.UserID = opt.UserID

	topics, err := json.Marshal(nonNilTopics(next.Topics))
	if err != nil {
		return model.LearningRecord{}, repo.ErrFailedToUpsert
	}
	prefs, err := json.Marshal(nonNilPreferences(next.Preferences))
	if err != nil {
		return model.LearningRecord{}, repo.ErrFailedToUpsert
	}

	const upsert = `
		INSERT INTO user_learning (user_id, topics, preferences, interaction_count, created_at, last_updated)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			topics = excluded.topics,
			preferences = excluded.preferences,
			interaction_count = excluded.interaction_count,
			last_updated = excluded.last_updated`

	_, err = tx.ExecContext(ctx, upsert,
		next.UserID, string(topics), string(prefs), next.InteractionCount,
		formatTime(next.CreatedAt), formatTime(next.LastUpdated),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s upsert: %v", r.dsn("UpsertLearning"), err)
		return model.LearningRecord{}, repo.ErrFailedToUpsert
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpsertLearning"), err)
		return model.LearningRecord{}, repo.ErrFailedToUpsert
	}

	return next, nil
}

func scanLearning(row rowScanner) (model.LearningRecord, error) {
	var (
		record           model.LearningRecord
		topics, prefs    string
		created, updated string
	)
	if err := row.Scan(&record.UserID, &topics, &prefs, &record.InteractionCount, &created, &updated); err != nil {
		return model.LearningRecord{}, err
	}
	if err := json.Unmarshal([]byte(topics), &record.Topics); err != nil {
		return model.LearningRecord{}, err
	}
	if err := json.Unmarshal([]byte(prefs), &record.Preferences); err != nil {
		return model.LearningRecord{}, err
	}

	var err error
	if record.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return model.LearningRecord{}, err
	}
	if record.LastUpdated, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return model.LearningRecord{}, err
	}
	return record, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func nonNilTopics(topics []string) []string {
	if topics == nil {
		return []string{}
	}
	return topics
}

func nonNilPreferences(prefs map[string]any) map[string]any {
	if prefs == nil {
		return map[string]any{}
	}
	return prefs
}
