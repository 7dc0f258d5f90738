package repository

import (
	"context"

	"kodi-assistant/internal/model"
)

// Repository is the composed interface for the learning data store.
type Repository interface {
	LearningRepository
}

// LearningRepository defines data access for per-user learning records.
type LearningRepository interface {
	// GetLearning returns the record of userID, or a zero value (UserID == "") when absent.
	GetLearning(ctx context.Context, userID string) (model.LearningRecord, error)

	// UpsertLearning runs opt.Apply against the current record inside a
	// transaction and stores the result. Apply may be invoked more than once
	// when the backend retries the transaction, so it must be pure.
	UpsertLearning(ctx context.Context, opt UpsertLearningOptions) (model.LearningRecord, error)

	// Ping verifies that the backing store is reachable.
	Ping(ctx context.Context) error
}
