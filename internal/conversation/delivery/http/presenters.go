package http

import (
	"time"

	"kodi-assistant/internal/conversation"
	"kodi-assistant/internal/model"
	pkgErrors "kodi-assistant/pkg/errors"
)

// --- Request DTOs ---

type historyReq struct {
	UserID string `form:"userId" json:"userId"`
	Limit  int    `form:"limit"  json:"limit"`
}

func (r historyReq) validate() error {
	if r.UserID != "" && !model.ValidIdentifier(r.UserID) {
		return pkgErrors.NewBadRequest(codeInvalidUserID, "Invalid userId format")
	}
	if r.Limit < 0 {
		return pkgErrors.NewBadRequest(codeInvalidArgument, "limit must not be negative")
	}
	return nil
}

func (r historyReq) toInput() conversation.ListInput {
	return conversation.ListInput{
		UserID: r.UserID,
		Limit:  r.Limit,
	}
}

// --- Response DTOs ---

type turnResp struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	SessionID   string              `json:"sessionId"`
	Timestamp   time.Time           `json:"timestamp"`
	UserMessage string              `json:"userMessage"`
	AIResponse  string              `json:"aiResponse"`
	ChatHistory []model.ChatMessage `json:"chatHistory"`
}

type historyResp struct {
	Conversations []turnResp `json:"conversations"`
	Count         int        `json:"count"`
}

func (h *handler) newHistoryResp(o conversation.ListOutput) historyResp {
	turns := make([]turnResp, 0, len(o.Turns))
	for _, t := range o.Turns {
		history := t.ChatHistory
		if history == nil {
			history = []model.ChatMessage{}
		}
		turns = append(turns, turnResp{
			ID:          t.ID,
			UserID:      t.UserID,
			SessionID:   t.SessionID,
			Timestamp:   t.Timestamp,
			UserMessage: t.UserMessage,
			AIResponse:  t.AIResponse,
			ChatHistory: history,
		})
	}
	return historyResp{
		Conversations: turns,
		Count:         o.Count,
	}
}
