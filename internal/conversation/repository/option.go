package repository

import "kodi-assistant/internal/model"

// CreateTurnOptions holds the fields of a new conversation turn.
type CreateTurnOptions struct {
	UserID      string
	SessionID   string
	UserMessage string
	AIResponse  string
	ChatHistory []model.ChatMessage
}

// ListTurnsOptions holds parameters for listing a user's turns.
type ListTurnsOptions struct {
	UserID string
	Limit  int
}
