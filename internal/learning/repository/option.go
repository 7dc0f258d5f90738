package repository

import "kodi-assistant/internal/model"

// ApplyFunc computes the next record from the stored one. found is false when
// no record exists yet, in which case existing is the zero value.
type ApplyFunc func(existing model.LearningRecord, found bool) model.LearningRecord

// UpsertLearningOptions holds parameters for a transactional read-modify-write.
type UpsertLearningOptions struct {
	UserID string
	Apply  ApplyFunc
}
