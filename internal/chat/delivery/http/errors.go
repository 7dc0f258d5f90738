package http

import (
	"errors"
	"net/http"

	"kodi-assistant/internal/chat"
	pkgErrors "kodi-assistant/pkg/errors"
)

const (
	codeInvalidInput       = "invalid_input"
	codeMissingUserParts   = "missing_user_parts"
	codeEmptyMessage       = "empty_message"
	codeMessageTooLong     = "message_too_long"
	codeInvalidUserID      = "invalid_user_id"
	codeInvalidSessionID   = "invalid_session_id"
	codeInvalidChatHistory = "invalid_chat_history"
	codeAIError            = "ai_error"
	codeAITimeout          = "ai_timeout"

	msgMissingUserParts = "userParts array is required"
	msgAIError          = "Грешка в AI модела. Моля, опитайте отново."
	msgAITimeout        = "AI моделът не отговори навреме. Моля, опитайте отново."
)

// mapError translates chat errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrMissingUserParts):
		return pkgErrors.NewBadRequest(codeMissingUserParts, msgMissingUserParts)
	case errors.Is(err, chat.ErrEmptyMessage):
		return pkgErrors.NewBadRequest(codeEmptyMessage, "Message cannot be empty")
	case errors.Is(err, chat.ErrMessageTooLong):
		return pkgErrors.NewBadRequest(codeMessageTooLong, "Message exceeds maximum length of 5000 characters")
	case errors.Is(err, chat.ErrInvalidUserID):
		return pkgErrors.NewBadRequest(codeInvalidUserID, "Invalid userId format")
	case errors.Is(err, chat.ErrInvalidSessionID):
		return pkgErrors.NewBadRequest(codeInvalidSessionID, "Invalid sessionId format")
	case errors.Is(err, chat.ErrInvalidHistory):
		return pkgErrors.NewBadRequest(codeInvalidChatHistory, "chatHistory entries need role user|model and at least one part")
	case errors.Is(err, chat.ErrModelTimeout):
		return pkgErrors.NewHTTPError(http.StatusGatewayTimeout, codeAITimeout, msgAITimeout)
	case errors.Is(err, chat.ErrModelUnavailable), errors.Is(err, chat.ErrEmptyModelResponse):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, codeAIError, msgAIError)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
