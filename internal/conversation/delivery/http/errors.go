package http

import (
	"errors"

	"kodi-assistant/internal/conversation"
	pkgErrors "kodi-assistant/pkg/errors"
)

const (
	codeInvalidArgument = "invalid_argument"
	codeInvalidUserID   = "invalid_user_id"
)

// mapError translates conversation errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrUserIDRequired):
		return pkgErrors.NewBadRequest(codeInvalidArgument, "userId is required")
	case errors.Is(err, conversation.ErrInvalidUserID):
		return pkgErrors.NewBadRequest(codeInvalidUserID, "Invalid userId format")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
