package usecase

import (
	"context"
	"strings"

	"kodi-assistant/internal/learning"
	repo "kodi-assistant/internal/learning/repository"
	"kodi-assistant/internal/model"
)

// Upsert merges input.Topics into the user's profile. Nothing is written when
// there are no topics, so interaction counts only grow on turns that taught something.
func (uc *implUseCase) Upsert(ctx context.Context, input learning.UpsertInput) (learning.UpsertOutput, error) {
	if input.UserID == "" {
		return learning.UpsertOutput{}, learning.ErrUserIDRequired
	}

	topics := cleanTopics(input.Topics)
	if len(topics) == 0 {
		return learning.UpsertOutput{}, nil
	}

	now := uc.now()
	record, err := uc.repo.UpsertLearning(ctx, repo.UpsertLearningOptions{
		UserID: input.UserID,
		Apply: func(existing model.LearningRecord, found bool) model.LearningRecord {
			if !found {
				return model.LearningRecord{
					UserID:           input.UserID,
					Topics:           mergeTopics(nil, topics, uc.maxTopics),
					Preferences:      map[string]any{},
					InteractionCount: 1,
					CreatedAt:        now,
					LastUpdated:      now,
				}
			}

			next := existing
			next.UserID = input.UserID
			next.Topics = mergeTopics(existing.Topics, topics, uc.maxTopics)
			next.InteractionCount = existing.InteractionCount + 1
			next.LastUpdated = now
			if next.Preferences == nil {
				next.Preferences = map[string]any{}
			}
			return next
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upsert UpsertLearning userID=%s: %v", input.UserID, err)
		return learning.UpsertOutput{}, err
	}

	for _, t := range topics {
		uc.metrics.TopicsLearnedTotal.WithLabelValues(t).Inc()
	}

	return learning.UpsertOutput{Record: record, Written: true}, nil
}

// mergeTopics appends incoming to existing keeping first-insertion order,
// drops duplicates, then evicts the oldest entries beyond limit.
func mergeTopics(existing, incoming []string, limit int) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]string, 0, len(existing)+len(incoming))

	for _, list := range [][]string{existing, incoming} {
		for _, t := range list {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			merged = append(merged, t)
		}
	}

	if limit > 0 && len(merged) > limit {
		merged = merged[len(merged)-limit:]
	}
	return merged
}

func cleanTopics(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
