package usecase

import (
	"context"
	"sync"
	"time"

	"kodi-assistant/internal/conversation"
	"kodi-assistant/internal/learning"
	"kodi-assistant/internal/model"
	"kodi-assistant/pkg/llmprovider"
	"kodi-assistant/pkg/log"
	"kodi-assistant/pkg/metrics"
)

// fakeGenerator records every request and answers with reply or err.
type fakeGenerator struct {
	mu       sync.Mutex
	requests []*llmprovider.Request
	reply    string
	err      error
	block    bool // wait for ctx cancellation instead of answering
}

func (g *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	g.mu.Lock()
	g.requests = append(g.requests, req)
	g.mu.Unlock()

	if g.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if g.err != nil {
		return nil, g.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: llmprovider.RoleModel, Parts: []llmprovider.Part{{Text: g.reply}}},
		Usage:   &llmprovider.Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}, nil
}

func (g *fakeGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.requests)
}

func (g *fakeGenerator) last() *llmprovider.Request {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.requests) == 0 {
		return nil
	}
	return g.requests[len(g.requests)-1]
}

type mockLearning struct {
	mu      sync.Mutex
	record  model.LearningRecord
	found   bool
	upserts []learning.UpsertInput
	err     error
}

func (m *mockLearning) ReadContext(ctx context.Context, userID string) (model.LearningRecord, bool) {
	return m.record, m.found
}

func (m *mockLearning) Upsert(ctx context.Context, input learning.UpsertInput) (learning.UpsertOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts = append(m.upserts, input)
	if m.err != nil {
		return learning.UpsertOutput{}, m.err
	}
	return learning.UpsertOutput{Written: true}, nil
}

func (m *mockLearning) Stats(ctx context.Context, userID string) (learning.StatsOutput, error) {
	return learning.StatsOutput{}, nil
}

type mockConversation struct {
	mu      sync.Mutex
	appends []conversation.AppendInput
	err     error
}

func (m *mockConversation) Append(ctx context.Context, input conversation.AppendInput) (model.ConversationTurn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appends = append(m.appends, input)
	if m.err != nil {
		return model.ConversationTurn{}, m.err
	}
	return model.ConversationTurn{ID: "t1"}, nil
}

func (m *mockConversation) ListRecent(ctx context.Context, input conversation.ListInput) (conversation.ListOutput, error) {
	return conversation.ListOutput{}, nil
}

type testDeps struct {
	gen          *fakeGenerator
	learning     *mockLearning
	conversation *mockConversation
	metrics      *metrics.Metrics
}

func newTestUseCase(cfg Config) (*implUseCase, *testDeps) {
	d := &testDeps{
		gen:          &fakeGenerator{reply: "Ето пример."},
		learning:     &mockLearning{},
		conversation: &mockConversation{},
		metrics:      metrics.NewRegistry(),
	}
	uc := New(d.gen, d.learning, d.conversation, nil, log.NewNop(), d.metrics, cfg)
	uc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return uc, d
}

func textMessage(role model.Role, text string) model.ChatMessage {
	return model.ChatMessage{Role: role, Parts: []model.Part{{Text: text}}}
}
