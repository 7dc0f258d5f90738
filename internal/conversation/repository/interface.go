package repository

import (
	"context"

	"kodi-assistant/internal/model"
)

// Repository is the composed interface for the conversation data store.
type Repository interface {
	TurnRepository
}

// TurnRepository defines append-only access to conversation turns.
type TurnRepository interface {
	// CreateTurn stores a new turn and returns it with ID and Timestamp set.
	CreateTurn(ctx context.Context, opt CreateTurnOptions) (model.ConversationTurn, error)

	// ListTurns returns up to opt.Limit turns of opt.UserID, newest first.
	ListTurns(ctx context.Context, opt ListTurnsOptions) ([]model.ConversationTurn, error)

	// Ping verifies that the backing store is reachable.
	Ping(ctx context.Context) error
}
