package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	repo "kodi-assistant/internal/learning/repository"
	"kodi-assistant/internal/model"
	"kodi-assistant/pkg/metrics"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// mockRepo is an in-memory Repository guarded by a mutex.
type mockRepo struct {
	mu          sync.Mutex
	records     map[string]model.LearningRecord
	getErr      error
	blockGet    bool
	upsertErr   error
	upsertCalls int
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[string]model.LearningRecord)}
}

func (r *mockRepo) GetLearning(ctx context.Context, userID string) (model.LearningRecord, error) {
	if r.blockGet {
		<-ctx.Done()
		return model.LearningRecord{}, ctx.Err()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return model.LearningRecord{}, r.getErr
	}
	return r.records[userID], nil
}

func (r *mockRepo) UpsertLearning(ctx context.Context, opt repo.UpsertLearningOptions) (model.LearningRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upsertCalls++
	if r.upsertErr != nil {
		return model.LearningRecord{}, r.upsertErr
	}
	existing, found := r.records[opt.UserID]
	next := opt.Apply(existing, found)
	r.records[opt.UserID] = next
	return next, nil
}

func (r *mockRepo) Ping(ctx context.Context) error { return nil }

var errStoreDown = errors.New("store unavailable")

// fakeClock returns successive instants one minute apart.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func newTestUseCase(r *mockRepo, maxTopics int) (*implUseCase, *fakeClock) {
	uc := New(r, &mockLogger{}, metrics.NewRegistry(), Config{MaxTopics: maxTopics})
	clock := &fakeClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	uc.now = clock.Now
	return uc, clock
}
