package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	repo "kodi-assistant/internal/learning/repository"
	"kodi-assistant/internal/model"
)

const selectLearning = `
	SELECT user_id, topics, preferences, interaction_count, created_at, last_updated
	FROM user_learning WHERE user_id = $1`

// GetLearning returns a zero value record when userID has no profile.
func (r *implRepository) GetLearning(ctx context.Context, userID string) (model.LearningRecord, error) {
	record, err := scanLearning(r.pool.QueryRow(ctx, selectLearning, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LearningRecord{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetLearning"), err)
		return model.LearningRecord{}, repo.ErrFailedToGet
	}
	return record, nil
}

// UpsertLearning serializes writers of the same user with a transaction-scoped
// advisory lock, so the first insert of a user cannot race either.
func (r *implRepository) UpsertLearning(ctx context.Context, opt repo.UpsertLearningOptions) (model.LearningRecord, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpsertLearning"), err)
		return model.LearningRecord{}, repo.ErrFailedToUpsert
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, "user_learning:"+opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s lock: %v", r.dsn("UpsertLearning"), err)
		return model.LearningRecord{}, repo.ErrFailedToUpsert
	}

	existing, err := scanLearning(tx.QueryRow(ctx, selectLearning, opt.UserID))
	found := true
	if errors.Is(err, pgx.ErrNoRows) {
		found = false
	} else if err != nil {
		r.l.Errorf(ctx, "%s select: %v", r.dsn("UpsertLearning"), err)
		return model.LearningRecord{}, repo.ErrFailedToUpsert
	}

	next := opt.Apply(existing, found)
	next.UserID = opt.UserID
	if next.Topics == nil {
		next.Topics = []string{}
	}
	if next.Preferences == nil {
		next.Preferences = map[string]any{}
	}

	const upsert = `
		INSERT INTO user_learning (user_id, topics, preferences, interaction_count, created_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			topics = EXCLUDED.topics,
			preferences = EXCLUDED.preferences,
			interaction_count = EXCLUDED.interaction_count,
			last_updated = EXCLUDED.last_updated`

	_, err = tx.Exec(ctx, upsert,
		next.UserID, next.Topics, next.Preferences, next.InteractionCount, next.CreatedAt, next.LastUpdated,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s upsert: %v", r.dsn("UpsertLearning"), err)
		return model.LearningRecord{}, repo.ErrFailedToUpsert
	}

	if err := tx.Commit(ctx); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpsertLearning"), err)
		return model.LearningRecord{}, repo.ErrFailedToUpsert
	}

	return next, nil
}

func scanLearning(row pgx.Row) (model.LearningRecord, error) {
	var record model.LearningRecord
	err := row.Scan(
		&record.UserID, &record.Topics, &record.Preferences,
		&record.InteractionCount, &record.CreatedAt, &record.LastUpdated,
	)
	if err != nil {
		return model.LearningRecord{}, err
	}
	return record, nil
}
