package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get learning record")
	ErrFailedToUpsert = errors.New("failed to upsert learning record")
)
