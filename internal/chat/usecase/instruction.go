package usecase

import (
	"encoding/json"
	"strings"

	"kodi-assistant/internal/model"
)

// buildInstruction appends the user's learning context to base. The last
// contextTopics topics are listed in stored order; preferences follow as JSON.
// base is returned unchanged when there is nothing to add.
func buildInstruction(base string, rec model.LearningRecord, found bool, contextTopics int) string {
	if !found {
		return base
	}

	var b strings.Builder
	b.WriteString(base)

	if len(rec.Topics) > 0 {
		recent := rec.Topics
		if contextTopics > 0 && len(recent) > contextTopics {
			recent = recent[len(recent)-contextTopics:]
		}
		b.WriteString("\n\n")
		b.WriteString(ContextLabel)
		b.WriteString(strings.Join(recent, ", "))
	}

	if len(rec.Preferences) > 0 {
		if raw, err := json.Marshal(rec.Preferences); err == nil {
			b.WriteString("\n")
			b.WriteString(PreferencesLabel)
			b.Write(raw)
		}
	}

	return b.String()
}
