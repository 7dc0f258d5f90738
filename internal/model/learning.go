package model

import "time"

// LearningRecord is the per-user "topics learned" profile.
// Topics is ordered by first insertion; the oldest topics are evicted first.
type LearningRecord struct {
	UserID           string
	Topics           []string
	Preferences      map[string]any
	InteractionCount int
	CreatedAt        time.Time // first interaction, never modified after creation
	LastUpdated      time.Time // last interaction
}
