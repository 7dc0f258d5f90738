package conversation

import "kodi-assistant/internal/model"

// --- UseCase Inputs ---

type AppendInput struct {
	UserID      string
	SessionID   string
	UserMessage string
	AIResponse  string
	ChatHistory []model.ChatMessage
}

type ListInput struct {
	UserID string
	Limit  int // 0 selects the configured default
}

// --- UseCase Outputs ---

type ListOutput struct {
	Turns []model.ConversationTurn
	Count int
}
