package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"kodi-assistant/internal/conversation"
	"kodi-assistant/internal/middleware"
	"kodi-assistant/internal/model"
	"kodi-assistant/pkg/log"
	"kodi-assistant/pkg/metrics"
	"kodi-assistant/pkg/response"
)

type mockUseCase struct {
	got conversation.ListInput
	out conversation.ListOutput
	err error
}

func (m *mockUseCase) Append(ctx context.Context, input conversation.AppendInput) (model.ConversationTurn, error) {
	return model.ConversationTurn{}, nil
}

func (m *mockUseCase) ListRecent(ctx context.Context, input conversation.ListInput) (conversation.ListOutput, error) {
	m.got = input
	if m.err != nil {
		return conversation.ListOutput{}, m.err
	}
	if input.UserID == "" {
		return conversation.ListOutput{}, conversation.ErrUserIDRequired
	}
	return m.out, nil
}

func newTestRouter(uc conversation.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), metrics.NewRegistry(), middleware.Config{APIPerMin: 1000, HealthPerMin: 1000})
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc), mw)
	return r
}

func TestHistory(t *testing.T) {
	ts := time.Date(2026, 5, 2, 15, 4, 5, 0, time.UTC)
	out := conversation.ListOutput{
		Turns: []model.ConversationTurn{{
			ID: "t1", UserID: "u1", SessionID: "s1", Timestamp: ts,
			UserMessage: "Какво е масив?", AIResponse: "Масивът е списък.",
		}},
		Count: 1,
	}

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		ucErr      error
		wantStatus int
		wantCode   string
		wantInput  conversation.ListInput
	}{
		{name: "GET", method: http.MethodGet, target: "/api/history?userId=u1&limit=5", wantStatus: http.StatusOK, wantInput: conversation.ListInput{UserID: "u1", Limit: 5}},
		{name: "POST", method: http.MethodPost, target: "/api/history", body: `{"userId":"u1"}`, wantStatus: http.StatusOK, wantInput: conversation.ListInput{UserID: "u1"}},
		{name: "missing userId", method: http.MethodGet, target: "/api/history", wantStatus: http.StatusBadRequest, wantCode: "invalid_argument"},
		{name: "negative limit", method: http.MethodGet, target: "/api/history?userId=u1&limit=-1", wantStatus: http.StatusBadRequest, wantCode: "invalid_argument"},
		{name: "path-like userId", method: http.MethodGet, target: "/api/history?userId=u1/turns", wantStatus: http.StatusBadRequest, wantCode: "invalid_user_id"},
		{name: "use case rejects format", method: http.MethodGet, target: "/api/history?userId=u1", ucErr: conversation.ErrInvalidUserID, wantStatus: http.StatusBadRequest, wantCode: "invalid_user_id"},
		{name: "non-numeric limit", method: http.MethodGet, target: "/api/history?userId=u1&limit=abc", wantStatus: http.StatusBadRequest, wantCode: response.CodeInvalidInput},
		{name: "store failure", method: http.MethodGet, target: "/api/history?userId=u1", ucErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{out: out, err: tt.ucErr}
			r := newTestRouter(uc)

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.wantStatus, w.Code, w.Body.String())
			}

			if tt.wantStatus != http.StatusOK {
				var resp response.ErrorResp
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshal error: %v", err)
				}
				if resp.Error != tt.wantCode {
					t.Errorf("expected code %q, got %q", tt.wantCode, resp.Error)
				}
				return
			}

			if uc.got != tt.wantInput {
				t.Errorf("expected input %+v, got %+v", tt.wantInput, uc.got)
			}

			var resp historyResp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal error: %v", err)
			}
			if resp.Count != 1 || len(resp.Conversations) != 1 {
				t.Fatalf("unexpected body: %+v", resp)
			}
			got := resp.Conversations[0]
			if got.ID != "t1" || got.AIResponse != "Масивът е списък." || !got.Timestamp.Equal(ts) {
				t.Errorf("unexpected turn: %+v", got)
			}
			if got.ChatHistory == nil {
				t.Error("expected chatHistory to encode as an empty array")
			}
		})
	}
}
