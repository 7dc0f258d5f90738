package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"kodi-assistant/internal/chat"
	"kodi-assistant/internal/model"
)

// turn is a validated chat request.
type turn struct {
	userID      string
	sessionID   string
	history     []model.ChatMessage
	userParts   []model.Part
	userMessage string
}

// forwarded returns the history sent to the model: the kept history followed
// by the current user message.
func (t turn) forwarded() []model.ChatMessage {
	out := make([]model.ChatMessage, 0, len(t.history)+1)
	out = append(out, t.history...)
	return append(out, model.ChatMessage{Role: model.RoleUser, Parts: t.userParts})
}

func (uc *implUseCase) validate(input chat.SendInput) (turn, error) {
	if len(input.UserParts) == 0 {
		return turn{}, chat.ErrMissingUserParts
	}

	var t turn
	texts := make([]string, 0, len(input.UserParts))
	for _, p := range input.UserParts {
		if p = strings.TrimSpace(p); p != "" {
			texts = append(texts, p)
			t.userParts = append(t.userParts, model.Part{Text: p})
		}
	}
	if len(texts) == 0 {
		return turn{}, chat.ErrEmptyMessage
	}
	t.userMessage = strings.Join(texts, "\n")
	if n := utf8.RuneCountInString(t.userMessage); n > uc.cfg.MaxMessageLength {
		return turn{}, fmt.Errorf("%w: %d > %d characters", chat.ErrMessageTooLong, n, uc.cfg.MaxMessageLength)
	}

	t.userID = strings.TrimSpace(input.UserID)
	if t.userID == "" {
		t.userID = uc.cfg.DefaultUserID
	} else if !model.ValidIdentifier(t.userID) {
		return turn{}, chat.ErrInvalidUserID
	}

	t.sessionID = strings.TrimSpace(input.SessionID)
	if t.sessionID == "" {
		t.sessionID = sessionIDPrefix + strconv.FormatInt(uc.now().UnixMilli(), 10)
	} else if !model.ValidIdentifier(t.sessionID) {
		return turn{}, chat.ErrInvalidSessionID
	}

	history := input.ChatHistory
	if len(history) > uc.cfg.MaxHistory {
		history = history[len(history)-uc.cfg.MaxHistory:]
	}
	for i, m := range history {
		if !m.Role.Valid() {
			return turn{}, fmt.Errorf("%w: entry %d has role %q", chat.ErrInvalidHistory, i, m.Role)
		}
		if len(m.Parts) == 0 {
			return turn{}, fmt.Errorf("%w: entry %d has no parts", chat.ErrInvalidHistory, i)
		}
	}
	t.history = history

	return t, nil
}
