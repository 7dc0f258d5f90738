package learning

import (
	"time"

	"kodi-assistant/internal/model"
)

// --- UseCase Inputs ---

type UpsertInput struct {
	UserID string
	Topics []string
}

// --- UseCase Outputs ---

type UpsertOutput struct {
	Record  model.LearningRecord
	Written bool
}

type StatsOutput struct {
	Topics           []string
	TotalTopics      int
	Preferences      map[string]any
	InteractionCount int
	LastUpdated      *time.Time
	Exists           bool
}
