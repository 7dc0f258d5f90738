package chat

import "errors"

var (
	// Input errors, returned before any external call.
	ErrMissingUserParts = errors.New("user parts are required")
	ErrEmptyMessage     = errors.New("message is empty")
	ErrMessageTooLong   = errors.New("message is too long")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrInvalidHistory   = errors.New("invalid chat history")

	// Model errors. Nothing is persisted for the turn.
	ErrModelUnavailable   = errors.New("model unavailable")
	ErrModelTimeout       = errors.New("model timed out")
	ErrEmptyModelResponse = errors.New("model returned an empty response")
)
