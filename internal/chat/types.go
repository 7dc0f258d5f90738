package chat

import "kodi-assistant/internal/model"

// --- UseCase Inputs ---

type SendInput struct {
	UserID      string
	SessionID   string
	ChatHistory []model.ChatMessage
	UserParts   []string
}

// --- UseCase Outputs ---

type SendOutput struct {
	Text      string
	SessionID string
}
