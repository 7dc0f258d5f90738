package usecase

import (
	"context"
	"sync"
	"time"

	"kodi-assistant/internal/conversation"
	"kodi-assistant/internal/learning"
	"kodi-assistant/pkg/llmprovider"
	"kodi-assistant/pkg/log"
	"kodi-assistant/pkg/metrics"
	"kodi-assistant/pkg/topic"
)

// Generator produces a model reply. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes validation and the model call. Zero values select the defaults.
type Config struct {
	MaxMessageLength int
	MaxHistory       int
	DefaultUserID    string
	ModelTimeout     time.Duration
	ContextTopics    int
	Temperature      float64
	MaxOutputTokens  int
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	gen            Generator
	learningUC     learning.UseCase
	conversationUC conversation.UseCase
	extractor      *topic.Extractor
	l              log.Logger
	metrics        *metrics.Metrics
	cfg            Config
	now            func() time.Time

	// mu guards the background job bookkeeping below.
	mu      sync.Mutex
	idle    *sync.Cond
	pending int
	closed  bool
}

// New creates a new chat UseCase implementation.
func New(
	gen Generator,
	learningUC learning.UseCase,
	conversationUC conversation.UseCase,
	extractor *topic.Extractor,
	l log.Logger,
	m *metrics.Metrics,
	cfg Config,
) *implUseCase {
	if cfg.MaxMessageLength <= 0 {
		cfg.MaxMessageLength = DefaultMaxMessageLength
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	if cfg.DefaultUserID == "" {
		cfg.DefaultUserID = DefaultUserID
	}
	if cfg.ModelTimeout <= 0 {
		cfg.ModelTimeout = DefaultModelTimeout
	}
	if cfg.ContextTopics <= 0 {
		cfg.ContextTopics = DefaultContextTopics
	}
	if extractor == nil {
		extractor = topic.NewDefaultExtractor()
	}

	uc := &implUseCase{
		gen:            gen,
		learningUC:     learningUC,
		conversationUC: conversationUC,
		extractor:      extractor,
		l:              l,
		metrics:        m,
		cfg:            cfg,
		now:            time.Now,
	}
	uc.idle = sync.NewCond(&uc.mu)
	return uc
}

// Wait blocks until every persistence job scheduled so far is done.
func (uc *implUseCase) Wait() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for uc.pending > 0 {
		uc.idle.Wait()
	}
}

// Close stops scheduling persistence jobs and waits for the running ones.
// Turns completed after Close are answered but not persisted.
func (uc *implUseCase) Close() {
	uc.mu.Lock()
	uc.closed = true
	uc.mu.Unlock()

	uc.Wait()
}

// acquireJobs reserves n job slots unless the use case is closed.
func (uc *implUseCase) acquireJobs(n int) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.closed {
		return false
	}
	uc.pending += n
	return true
}

func (uc *implUseCase) jobDone() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.pending--
	if uc.pending == 0 {
		uc.idle.Broadcast()
	}
}
