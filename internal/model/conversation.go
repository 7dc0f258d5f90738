package model

import "time"

// ConversationTurn is an immutable record of one completed chat exchange.
type ConversationTurn struct {
	ID          string
	UserID      string
	SessionID   string
	Timestamp   time.Time // assigned by the store at write time
	UserMessage string
	AIResponse  string
	ChatHistory []ChatMessage
}
