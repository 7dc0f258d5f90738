package usecase

import (
	"time"

	"kodi-assistant/internal/learning/repository"
	"kodi-assistant/pkg/log"
	"kodi-assistant/pkg/metrics"
)

const (
	// DefaultMaxTopics is the number of topics kept per user.
	DefaultMaxTopics = 50
	// DefaultReadTimeout bounds the profile read that runs before every model call.
	DefaultReadTimeout = 3 * time.Second
)

// Config tunes the learning profile.
type Config struct {
	MaxTopics   int
	ReadTimeout time.Duration
}

// implUseCase is the private implementation of learning.UseCase.
type implUseCase struct {
	repo        repository.Repository
	l           log.Logger
	metrics     *metrics.Metrics
	maxTopics   int
	readTimeout time.Duration
	now         func() time.Time
}

// New creates a new learning UseCase implementation.
func New(repo repository.Repository, l log.Logger, m *metrics.Metrics, cfg Config) *implUseCase {
	maxTopics := cfg.MaxTopics
	if maxTopics <= 0 {
		maxTopics = DefaultMaxTopics
	}
	readTimeout := cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}
	return &implUseCase{
		repo:        repo,
		l:           l,
		metrics:     m,
		maxTopics:   maxTopics,
		readTimeout: readTimeout,
		now:         func() time.Time { return time.Now().UTC() },
	}
}
