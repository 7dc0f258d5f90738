package usecase

import (
	"kodi-assistant/internal/conversation/repository"
	"kodi-assistant/pkg/log"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Config bounds history listing.
type Config struct {
	DefaultLimit int
	MaxLimit     int
}

// implUseCase is the private implementation of conversation.UseCase.
type implUseCase struct {
	repo         repository.Repository
	l            log.Logger
	defaultLimit int
	maxLimit     int
}

// New creates a new conversation UseCase implementation.
func New(repo repository.Repository, l log.Logger, cfg Config) *implUseCase {
	uc := &implUseCase{
		repo:         repo,
		l:            l,
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
	}
	if uc.maxLimit <= 0 {
		uc.maxLimit = MaxLimit
	}
	if uc.defaultLimit <= 0 {
		uc.defaultLimit = DefaultLimit
	}
	if uc.defaultLimit > uc.maxLimit {
		uc.defaultLimit = uc.maxLimit
	}
	return uc
}
