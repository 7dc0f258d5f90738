package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"

	repo "kodi-assistant/internal/conversation/repository"
	"kodi-assistant/internal/model"
)

// timeLayout is fixed width so that created_at sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func (r *implRepository) CreateTurn(ctx context.Context, opt repo.CreateTurnOptions) (model.ConversationTurn, error) {
	history := opt.ChatHistory
	if history == nil {
		history = []model.ChatMessage{}
	}
	raw, err := json.Marshal(history)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal history: %v", r.dsn("CreateTurn"), err)
		return model.ConversationTurn{}, repo.ErrFailedToCreate
	}

	turn := model.ConversationTurn{
		ID:          ulid.Make().String(),
		UserID:      opt.UserID,
		SessionID:   opt.SessionID,
		Timestamp:   r.now().UTC(),
		UserMessage: opt.UserMessage,
		AIResponse:  opt.AIResponse,
		ChatHistory: history,
	}

	const insert = `
		INSERT INTO conversations (id, user_id, session_id, user_message, ai_response, chat_history, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, insert,
		turn.ID, turn.UserID, turn.SessionID, turn.UserMessage, turn.AIResponse,
		string(raw), turn.Timestamp.Format(timeLayout),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("CreateTurn"), err)
		return model.ConversationTurn{}, repo.ErrFailedToCreate
	}

	return turn, nil
}

func (r *implRepository) ListTurns(ctx context.Context, opt repo.ListTurnsOptions) ([]model.ConversationTurn, error) {
	const query = `
		SELECT id, user_id, session_id, user_message, ai_response, chat_history, created_at
		FROM conversations
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "%s query: %v", r.dsn("ListTurns"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	turns := make([]model.ConversationTurn, 0, opt.Limit)
	for rows.Next() {
		var (
			turn    model.ConversationTurn
			history string
			created string
		)
		if err := rows.Scan(&turn.ID, &turn.UserID, &turn.SessionID, &turn.UserMessage, &turn.AIResponse, &history, &created); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTurns"), err)
			return nil, repo.ErrFailedToList
		}
		if err := json.Unmarshal([]byte(history), &turn.ChatHistory); err != nil {
			r.l.Errorf(ctx, "%s decode history id=%s: %v", r.dsn("ListTurns"), turn.ID, err)
			return nil, repo.ErrFailedToList
		}
		if turn.Timestamp, err = time.Parse(timeLayout, created); err != nil {
			r.l.Errorf(ctx, "%s parse created_at id=%s: %v", r.dsn("ListTurns"), turn.ID, err)
			return nil, repo.ErrFailedToList
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTurns"), err)
		return nil, repo.ErrFailedToList
	}

	return turns, nil
}
