package postgre

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"

	repo "kodi-assistant/internal/conversation/repository"
	"kodi-assistant/internal/model"
)

// CreateTurn lets the database stamp created_at with clock_timestamp().
func (r *implRepository) CreateTurn(ctx context.Context, opt repo.CreateTurnOptions) (model.ConversationTurn, error) {
	turn := model.ConversationTurn{
		ID:          ulid.Make().String(),
		UserID:      opt.UserID,
		SessionID:   opt.SessionID,
		UserMessage: opt.UserMessage,
		AIResponse:  opt.AIResponse,
		ChatHistory: opt.ChatHistory,
	}
	if turn.ChatHistory == nil {
		turn.ChatHistory = []model.ChatMessage{}
	}

	const insert = `
		INSERT INTO conversations (id, user_id, session_id, user_message, ai_response, chat_history)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.pool.QueryRow(ctx, insert,
		turn.ID, turn.UserID, turn.SessionID, turn.UserMessage, turn.AIResponse, turn.ChatHistory,
	).Scan(&turn.Timestamp)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTurn"), err)
		return model.ConversationTurn{}, repo.ErrFailedToCreate
	}

	return turn, nil
}

func (r *implRepository) ListTurns(ctx context.Context, opt repo.ListTurnsOptions) ([]model.ConversationTurn, error) {
	const query = `
		SELECT id, user_id, session_id, user_message, ai_response, chat_history, created_at
		FROM conversations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, opt.UserID, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "%s query: %v", r.dsn("ListTurns"), err)
		return nil, repo.ErrFailedToList
	}

	turns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.ConversationTurn, error) {
		var t model.ConversationTurn
		err := row.Scan(&t.ID, &t.UserID, &t.SessionID, &t.UserMessage, &t.AIResponse, &t.ChatHistory, &t.Timestamp)
		return t, err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTurns"), err)
		return nil, repo.ErrFailedToList
	}
	if turns == nil {
		turns = []model.ConversationTurn{}
	}

	return turns, nil
}
