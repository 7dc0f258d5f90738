package http

import (
	"bytes"
	"encoding/json"
	"errors"

	"kodi-assistant/internal/chat"
	"kodi-assistant/internal/model"
	pkgErrors "kodi-assistant/pkg/errors"
)

// --- Request DTOs ---

// chatReq is the body of POST /chat. userParts items are either strings or
// {"text": "..."} objects.
type chatReq struct {
	UserID      string              `json:"userId"`
	SessionID   string              `json:"sessionId"`
	ChatHistory []model.ChatMessage `json:"chatHistory"`
	UserParts   []json.RawMessage   `json:"userParts" swaggertype:"array,object"`

	texts []string
}

// chatEnvelope accepts the legacy {"data": {...}} wrapping.
type chatEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type partReq struct {
	Text string `json:"text"`
}

func (r *chatReq) validate() error {
	if len(r.UserParts) == 0 {
		return pkgErrors.NewBadRequest(codeMissingUserParts, msgMissingUserParts)
	}

	r.texts = make([]string, 0, len(r.UserParts))
	for _, raw := range r.UserParts {
		text, err := decodePart(raw)
		if err != nil {
			return pkgErrors.NewBadRequest(codeInvalidInput, "userParts items must be strings or {text} objects")
		}
		r.texts = append(r.texts, text)
	}
	return nil
}

// decodePart normalizes one userParts item to its text.
func decodePart(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", errors.New("empty part")
	}

	switch raw[0] {
	case '"':
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	case '{':
		var p partReq
		err := json.Unmarshal(raw, &p)
		return p.Text, err
	default:
		return "", errors.New("unsupported part")
	}
}

func (r chatReq) toInput() chat.SendInput {
	return chat.SendInput{
		UserID:      r.UserID,
		SessionID:   r.SessionID,
		ChatHistory: r.ChatHistory,
		UserParts:   r.texts,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Text      string `json:"text"`
	SessionID string `json:"sessionId"`
}

func (h *handler) newChatResp(o chat.SendOutput) chatResp {
	return chatResp{
		Text:      o.Text,
		SessionID: o.SessionID,
	}
}
