package conversation

import (
	"context"

	"kodi-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Append stores one completed chat turn. The store assigns ID and Timestamp.
	Append(ctx context.Context, input AppendInput) (model.ConversationTurn, error)

	// ListRecent returns the most recent turns of a user, newest first.
	ListRecent(ctx context.Context, input ListInput) (ListOutput, error)
}
