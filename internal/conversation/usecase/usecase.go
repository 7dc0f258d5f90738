package usecase

import (
	"context"

	"kodi-assistant/internal/conversation"
	"kodi-assistant/internal/conversation/repository"
	"kodi-assistant/internal/model"
)

// Append stores a completed chat turn.
func (uc *implUseCase) Append(ctx context.Context, input conversation.AppendInput) (model.ConversationTurn, error) {
	if input.UserID == "" {
		return model.ConversationTurn{}, conversation.ErrUserIDRequired
	}

	history := input.ChatHistory
	if history == nil {
		history = []model.ChatMessage{}
	}

	turn, err := uc.repo.CreateTurn(ctx, repository.CreateTurnOptions{
		UserID:      input.UserID,
		SessionID:   input.SessionID,
		UserMessage: input.UserMessage,
		AIResponse:  input.AIResponse,
		ChatHistory: history,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Append CreateTurn userID=%s: %v", input.UserID, err)
		return model.ConversationTurn{}, err
	}

	return turn, nil
}

// ListRecent returns the newest turns of a user. The limit falls back to the
// default when unset and is clamped to the maximum.
func (uc *implUseCase) ListRecent(ctx context.Context, input conversation.ListInput) (conversation.ListOutput, error) {
	if input.UserID == "" {
		return conversation.ListOutput{}, conversation.ErrUserIDRequired
	}
	if !model.ValidIdentifier(input.UserID) {
		return conversation.ListOutput{}, conversation.ErrInvalidUserID
	}

	turns, err := uc.repo.ListTurns(ctx, repository.ListTurnsOptions{
		UserID: input.UserID,
		Limit:  uc.clampLimit(input.Limit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRecent ListTurns userID=%s: %v", input.UserID, err)
		return conversation.ListOutput{}, err
	}
	if turns == nil {
		turns = []model.ConversationTurn{}
	}

	return conversation.ListOutput{Turns: turns, Count: len(turns)}, nil
}

func (uc *implUseCase) clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return uc.defaultLimit
	case limit > uc.maxLimit:
		return uc.maxLimit
	default:
		return limit
	}
}
