package conversation

import "errors"

var (
	ErrUserIDRequired = errors.New("user id is required")
	ErrInvalidUserID  = errors.New("user id has an invalid format")
)
