package usecase

import (
	"strings"
	"testing"

	"kodi-assistant/internal/model"
)

func TestBuildInstruction(t *testing.T) {
	const base = "persona"

	tests := []struct {
		name  string
		rec   model.LearningRecord
		found bool
		want  string
	}{
		{name: "absent", want: base},
		{name: "no topics no preferences", rec: model.LearningRecord{UserID: "u1"}, found: true, want: base},
		{
			name:  "few topics",
			rec:   model.LearningRecord{UserID: "u1", Topics: []string{"HTML", "CSS"}},
			found: true,
			want:  base + "\n\n" + ContextLabel + "HTML, CSS",
		},
		{
			name:  "last five in stored order",
			rec:   model.LearningRecord{UserID: "u1", Topics: []string{"HTML", "CSS", "JavaScript", "Python", "React", "Git", "JSON"}},
			found: true,
			want:  base + "\n\n" + ContextLabel + "JavaScript, Python, React, Git, JSON",
		},
		{
			name:  "preferences only",
			rec:   model.LearningRecord{UserID: "u1", Preferences: map[string]any{"level": "beginner"}},
			found: true,
			want:  base + "\n" + PreferencesLabel + `{"level":"beginner"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildInstruction(base, tt.rec, tt.found, 5)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBuildInstruction_TopicsAndPreferences(t *testing.T) {
	rec := model.LearningRecord{UserID: "u1", Topics: []string{"Loop"}, Preferences: map[string]any{"style": "short"}}
	got := buildInstruction(BasePrompt, rec, true, 5)

	if !strings.HasPrefix(got, BasePrompt) {
		t.Fatal("base prompt must come first")
	}
	ctxIdx := strings.Index(got, ContextLabel+"Loop")
	prefIdx := strings.Index(got, PreferencesLabel)
	if ctxIdx < 0 || prefIdx < 0 || prefIdx < ctxIdx {
		t.Errorf("expected context line before preferences line, got %q", got[len(BasePrompt):])
	}
}
