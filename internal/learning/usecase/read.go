package usecase

import (
	"context"

	"kodi-assistant/internal/learning"
	"kodi-assistant/internal/model"
)

// ReadContext loads the learning profile used to personalize the system instruction.
// A failing or slow store degrades to "no profile" so that chat keeps working.
func (uc *implUseCase) ReadContext(ctx context.Context, userID string) (model.LearningRecord, bool) {
	if userID == "" {
		return model.LearningRecord{}, false
	}

	readCtx, cancel := context.WithTimeout(ctx, uc.readTimeout)
	defer cancel()

	record, err := uc.repo.GetLearning(readCtx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ReadContext GetLearning userID=%s: %v", userID, err)
		uc.metrics.LearningReadDegradedTotal.Inc()
		return model.LearningRecord{}, false
	}
	if record.UserID == "" {
		return model.LearningRecord{}, false
	}

	return record, true
}

// Stats returns the display summary of a learning profile.
func (uc *implUseCase) Stats(ctx context.Context, userID string) (learning.StatsOutput, error) {
	if userID == "" {
		return learning.StatsOutput{}, learning.ErrUserIDRequired
	}
	if !model.ValidIdentifier(userID) {
		return learning.StatsOutput{}, learning.ErrInvalidUserID
	}

	record, err := uc.repo.GetLearning(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats GetLearning userID=%s: %v", userID, err)
		return learning.StatsOutput{}, err
	}

	out := learning.StatsOutput{
		Topics:      []string{},
		Preferences: map[string]any{},
	}
	if record.UserID == "" {
		return out, nil
	}

	if record.Topics != nil {
		out.Topics = record.Topics
	}
	if record.Preferences != nil {
		out.Preferences = record.Preferences
	}
	out.TotalTopics = len(out.Topics)
	out.InteractionCount = record.InteractionCount
	lastUpdated := record.LastUpdated
	out.LastUpdated = &lastUpdated
	out.Exists = true

	return out, nil
}
