package postgre

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	repo "kodi-assistant/internal/conversation/repository"
	"kodi-assistant/internal/model"
	"kodi-assistant/pkg/log"
	"kodi-assistant/pkg/postgres"
)

// Integration tests are opt-in and require TEST_DATABASE_URL.

func mustOpenTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	raw := strings.TrimSpace(os.Getenv("TEST_DATABASE_URL"))
	if raw == "" {
		t.Skip("integration test skipped: TEST_DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, postgres.Config{URL: raw})
	if err != nil {
		t.Skipf("integration test skipped: Postgres unreachable: %v", err)
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestPostgresConversation_CreateAndList(t *testing.T) {
	pool := mustOpenTestPool(t)
	r := New(pool, log.NewNop())
	ctx := context.Background()

	userID := "it_" + time.Now().Format("20060102150405.000000000")
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM conversations WHERE user_id = $1`, userID)
	})

	history := []model.ChatMessage{{Role: model.RoleUser, Parts: []model.Part{{Text: "first"}}}}
	first, err := r.CreateTurn(ctx, repo.CreateTurnOptions{UserID: userID, SessionID: "s1", UserMessage: "first", AIResponse: "a", ChatHistory: history})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := r.CreateTurn(ctx, repo.CreateTurnOptions{UserID: userID, SessionID: "s1", UserMessage: "second", AIResponse: "b"})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if first.Timestamp.IsZero() || !second.Timestamp.After(first.Timestamp) {
		t.Errorf("expected increasing store timestamps, got %v then %v", first.Timestamp, second.Timestamp)
	}

	turns, err := r.ListTurns(ctx, repo.ListTurnsOptions{UserID: userID, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(turns) != 2 || turns[0].ID != second.ID || turns[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", turns)
	}
	if len(turns[1].ChatHistory) != 1 || turns[1].ChatHistory[0].Role != model.RoleUser {
		t.Errorf("unexpected history: %+v", turns[1].ChatHistory)
	}
}
