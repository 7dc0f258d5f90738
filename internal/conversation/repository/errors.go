package repository

import "errors"

var (
	ErrFailedToCreate = errors.New("failed to create conversation turn")
	ErrFailedToList   = errors.New("failed to list conversation turns")
)
