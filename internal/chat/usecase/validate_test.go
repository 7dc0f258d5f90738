package usecase

import (
	"errors"
	"strings"
	"testing"

	"kodi-assistant/internal/chat"
	"kodi-assistant/internal/model"
)

func TestValidate(t *testing.T) {
	uc, _ := newTestUseCase(Config{})

	tests := []struct {
		name    string
		input   chat.SendInput
		wantErr error
	}{
		{name: "no parts", input: chat.SendInput{}, wantErr: chat.ErrMissingUserParts},
		{name: "blank parts", input: chat.SendInput{UserParts: []string{"  ", "\n"}}, wantErr: chat.ErrEmptyMessage},
		{name: "too long", input: chat.SendInput{UserParts: []string{strings.Repeat("a", 5001)}}, wantErr: chat.ErrMessageTooLong},
		{name: "max length in cyrillic", input: chat.SendInput{UserParts: []string{strings.Repeat("ж", 5000)}}},
		{name: "joined parts too long", input: chat.SendInput{UserParts: []string{strings.Repeat("a", 2500), strings.Repeat("b", 2500)}}, wantErr: chat.ErrMessageTooLong},
		{name: "bad user id", input: chat.SendInput{UserID: "u 1", UserParts: []string{"hi"}}, wantErr: chat.ErrInvalidUserID},
		{name: "user id too long", input: chat.SendInput{UserID: strings.Repeat("u", 129), UserParts: []string{"hi"}}, wantErr: chat.ErrInvalidUserID},
		{name: "bad session id", input: chat.SendInput{SessionID: "s$1", UserParts: []string{"hi"}}, wantErr: chat.ErrInvalidSessionID},
		{name: "bad role", input: chat.SendInput{UserParts: []string{"hi"}, ChatHistory: []model.ChatMessage{textMessage("assistant", "x")}}, wantErr: chat.ErrInvalidHistory},
		{name: "history entry without parts", input: chat.SendInput{UserParts: []string{"hi"}, ChatHistory: []model.ChatMessage{{Role: model.RoleUser}}}, wantErr: chat.ErrInvalidHistory},
		{name: "valid", input: chat.SendInput{UserID: "user_1-a", SessionID: "session_42", UserParts: []string{"hi"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.validate(tt.input)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_Defaults(t *testing.T) {
	uc, _ := newTestUseCase(Config{})

	got, err := uc.validate(chat.SendInput{UserParts: []string{"  Здравей  ", "", "Как си?"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.userID != "anonymous" {
		t.Errorf("expected default user id, got %q", got.userID)
	}
	if got.sessionID != "session_1700000000000" {
		t.Errorf("unexpected session id %q", got.sessionID)
	}
	if got.userMessage != "Здравей\nКак си?" {
		t.Errorf("unexpected user message %q", got.userMessage)
	}
	if len(got.userParts) != 2 {
		t.Errorf("expected blank parts dropped, got %+v", got.userParts)
	}
}

func TestValidate_TruncatesHistoryBeforeCheckingIt(t *testing.T) {
	uc, _ := newTestUseCase(Config{})

	history := []model.ChatMessage{textMessage("system", "dropped anyway")}
	for i := 0; i < 20; i++ {
		history = append(history, textMessage(model.RoleUser, "m"))
	}

	got, err := uc.validate(chat.SendInput{UserParts: []string{"hi"}, ChatHistory: history})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.history) != 20 {
		t.Errorf("expected 20 history entries, got %d", len(got.history))
	}
}
