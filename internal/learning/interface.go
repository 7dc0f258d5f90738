package learning

import (
	"context"

	"kodi-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ReadContext returns the learning profile of userID. It never fails:
	// store errors are logged and reported as an absent profile.
	ReadContext(ctx context.Context, userID string) (model.LearningRecord, bool)

	// Upsert merges topics into the profile of userID. Empty topics are a no-op.
	Upsert(ctx context.Context, input UpsertInput) (UpsertOutput, error)

	// Stats summarizes the profile of userID for display.
	Stats(ctx context.Context, userID string) (StatsOutput, error)
}
