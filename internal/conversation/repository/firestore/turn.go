package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	repo "kodi-assistant/internal/conversation/repository"
	"kodi-assistant/internal/model"
)

// turnDoc is the stored shape of a conversation turn.
type turnDoc struct {
	UserID      string              `firestore:"userId"`
	SessionID   string              `firestore:"sessionId"`
	Timestamp   any                 `firestore:"timestamp"`
	UserMessage string              `firestore:"userMessage"`
	AIResponse  string              `firestore:"aiResponse"`
	ChatHistory []model.ChatMessage `firestore:"chatHistory"`
}

// storedTurnDoc mirrors turnDoc with the resolved server timestamp.
type storedTurnDoc struct {
	UserID      string              `firestore:"userId"`
	SessionID   string              `firestore:"sessionId"`
	Timestamp   time.Time           `firestore:"timestamp"`
	UserMessage string              `firestore:"userMessage"`
	AIResponse  string              `firestore:"aiResponse"`
	ChatHistory []model.ChatMessage `firestore:"chatHistory"`
}

// CreateTurn stores the turn under a new document id. The timestamp is the
// server time of the write.
func (r *implRepository) CreateTurn(ctx context.Context, opt repo.CreateTurnOptions) (model.ConversationTurn, error) {
	history := opt.ChatHistory
	if history == nil {
		history = []model.ChatMessage{}
	}

	ref := r.client.Collection(r.collection).NewDoc()
	wr, err := ref.Create(ctx, turnDoc{
		UserID:      opt.UserID,
		SessionID:   opt.SessionID,
		Timestamp:   firestore.ServerTimestamp,
		UserMessage: opt.UserMessage,
		AIResponse:  opt.AIResponse,
		ChatHistory: history,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTurn"), err)
		return model.ConversationTurn{}, repo.ErrFailedToCreate
	}

	return model.ConversationTurn{
		ID:          ref.ID,
		UserID:      opt.UserID,
		SessionID:   opt.SessionID,
		Timestamp:   wr.UpdateTime,
		UserMessage: opt.UserMessage,
		AIResponse:  opt.AIResponse,
		ChatHistory: history,
	}, nil
}

func (r *implRepository) ListTurns(ctx context.Context, opt repo.ListTurnsOptions) ([]model.ConversationTurn, error) {
	iter := r.client.Collection(r.collection).
		Where("userId", "==", opt.UserID).
		OrderBy("timestamp", firestore.Desc).
		Limit(opt.Limit).
		Documents(ctx)
	defer iter.Stop()

	turns := make([]model.ConversationTurn, 0, opt.Limit)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			r.l.Errorf(ctx, "%s query: %v", r.dsn("ListTurns"), err)
			return nil, repo.ErrFailedToList
		}

		var doc storedTurnDoc
		if err := snap.DataTo(&doc); err != nil {
			r.l.Errorf(ctx, "%s decode id=%s: %v", r.dsn("ListTurns"), snap.Ref.ID, err)
			return nil, repo.ErrFailedToList
		}
		turns = append(turns, model.ConversationTurn{
			ID:          snap.Ref.ID,
			UserID:      doc.UserID,
			SessionID:   doc.SessionID,
			Timestamp:   doc.Timestamp,
			UserMessage: doc.UserMessage,
			AIResponse:  doc.AIResponse,
			ChatHistory: doc.ChatHistory,
		})
	}

	return turns, nil
}
