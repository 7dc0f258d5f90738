package http

import (
	"time"

	"kodi-assistant/internal/learning"
	"kodi-assistant/internal/model"
	pkgErrors "kodi-assistant/pkg/errors"
)

// --- Request DTOs ---

type statsReq struct {
	UserID string `form:"userId" json:"userId"`
}

func (r statsReq) validate() error {
	if r.UserID != "" && !model.ValidIdentifier(r.UserID) {
		return pkgErrors.NewBadRequest(codeInvalidUserID, "Invalid userId format")
	}
	return nil
}

// --- Response DTOs ---

type statsResp struct {
	Topics           []string       `json:"topics"`
	TotalTopics      int            `json:"totalTopics"`
	Preferences      map[string]any `json:"preferences"`
	LastUpdated      *time.Time     `json:"lastUpdated"`
	InteractionCount int            `json:"interactionCount"`
	Exists           bool           `json:"exists"`
}

func (h *handler) newStatsResp(o learning.StatsOutput) statsResp {
	return statsResp{
		Topics:           o.Topics,
		TotalTopics:      o.TotalTopics,
		Preferences:      o.Preferences,
		LastUpdated:      o.LastUpdated,
		InteractionCount: o.InteractionCount,
		Exists:           o.Exists,
	}
}
