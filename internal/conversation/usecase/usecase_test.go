package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"kodi-assistant/internal/conversation"
	repo "kodi-assistant/internal/conversation/repository"
	"kodi-assistant/internal/model"
	"kodi-assistant/pkg/log"
)

type mockRepo struct {
	created []repo.CreateTurnOptions
	listOpt repo.ListTurnsOptions
	turns   []model.ConversationTurn
	err     error
	pingErr error
}

func (r *mockRepo) CreateTurn(ctx context.Context, opt repo.CreateTurnOptions) (model.ConversationTurn, error) {
	if r.err != nil {
		return model.ConversationTurn{}, r.err
	}
	r.created = append(r.created, opt)
	return model.ConversationTurn{
		ID:          "t1",
		UserID:      opt.UserID,
		SessionID:   opt.SessionID,
		Timestamp:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UserMessage: opt.UserMessage,
		AIResponse:  opt.AIResponse,
		ChatHistory: opt.ChatHistory,
	}, nil
}

func (r *mockRepo) ListTurns(ctx context.Context, opt repo.ListTurnsOptions) ([]model.ConversationTurn, error) {
	r.listOpt = opt
	if r.err != nil {
		return nil, r.err
	}
	return r.turns, nil
}

func (r *mockRepo) Ping(ctx context.Context) error { return r.pingErr }

func TestAppend(t *testing.T) {
	ctx := context.Background()

	t.Run("stores turn", func(t *testing.T) {
		r := &mockRepo{}
		uc := New(r, log.NewNop(), Config{})

		turn, err := uc.Append(ctx, conversation.AppendInput{
			UserID: "u1", SessionID: "s1", UserMessage: "hi", AIResponse: "hello",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if turn.ID == "" || turn.UserMessage != "hi" {
			t.Errorf("unexpected turn: %+v", turn)
		}
		if len(r.created) != 1 || r.created[0].ChatHistory == nil {
			t.Errorf("expected one create with non-nil history, got %+v", r.created)
		}
	})

	t.Run("requires user id", func(t *testing.T) {
		r := &mockRepo{}
		uc := New(r, log.NewNop(), Config{})
		if _, err := uc.Append(ctx, conversation.AppendInput{}); !errors.Is(err, conversation.ErrUserIDRequired) {
			t.Errorf("expected ErrUserIDRequired, got %v", err)
		}
		if len(r.created) != 0 {
			t.Error("repository must not be called")
		}
	})

	t.Run("store error", func(t *testing.T) {
		want := repo.ErrFailedToCreate
		uc := New(&mockRepo{err: want}, log.NewNop(), Config{})
		if _, err := uc.Append(ctx, conversation.AppendInput{UserID: "u1"}); !errors.Is(err, want) {
			t.Errorf("expected %v, got %v", want, err)
		}
	})
}

func TestListRecent_Limit(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: DefaultLimit},
		{name: "negative", limit: -3, want: DefaultLimit},
		{name: "explicit", limit: 5, want: 5},
		{name: "clamped", limit: 1000, want: MaxLimit},
		{name: "configured", cfg: Config{DefaultLimit: 20, MaxLimit: 50}, limit: 0, want: 20},
		{name: "configured clamp", cfg: Config{DefaultLimit: 20, MaxLimit: 50}, limit: 51, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &mockRepo{}
			uc := New(r, log.NewNop(), tt.cfg)
			if _, err := uc.ListRecent(context.Background(), conversation.ListInput{UserID: "u1", Limit: tt.limit}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.listOpt.Limit != tt.want {
				t.Errorf("expected limit %d, got %d", tt.want, r.listOpt.Limit)
			}
		})
	}
}

func TestListRecent(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects path-like user id", func(t *testing.T) {
		r := &mockRepo{}
		uc := New(r, log.NewNop(), Config{})
		_, err := uc.ListRecent(ctx, conversation.ListInput{UserID: "u1/../u2"})
		if !errors.Is(err, conversation.ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
		if r.listOpt.UserID != "" {
			t.Error("repository must not be called")
		}
	})

	t.Run("empty result is non-nil", func(t *testing.T) {
		uc := New(&mockRepo{}, log.NewNop(), Config{})
		out, err := uc.ListRecent(ctx, conversation.ListInput{UserID: "u1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Turns == nil || out.Count != 0 {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("count matches turns", func(t *testing.T) {
		r := &mockRepo{turns: []model.ConversationTurn{{ID: "b"}, {ID: "a"}}}
		out, err := New(r, log.NewNop(), Config{}).ListRecent(ctx, conversation.ListInput{UserID: "u1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 2 || out.Turns[0].ID != "b" {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("requires user id", func(t *testing.T) {
		_, err := New(&mockRepo{}, log.NewNop(), Config{}).ListRecent(ctx, conversation.ListInput{})
		if !errors.Is(err, conversation.ErrUserIDRequired) {
			t.Errorf("expected ErrUserIDRequired, got %v", err)
		}
	})
}
