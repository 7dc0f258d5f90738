package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"kodi-assistant/config"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	model     string
	err       error
	response  *Response
	delay     time.Duration
	callCount int
	lastReq   *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	m.lastReq = req
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func textResponse(provider, text string) *Response {
	return &Response{
		Content:      Message{Role: RoleModel, Parts: []Part{{Text: text}}},
		ProviderName: provider,
		ModelName:    provider + "-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func testRequest() *Request {
	return &Request{
		SystemInstruction: &Message{Parts: []Part{{Text: "persona"}}},
		Messages:          []Message{{Role: RoleUser, Parts: []Part{{Text: "Здравей"}}}},
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: textResponse("primary", "Hello")}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: textResponse("secondary", "Hi")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 3}, logger)

	resp, err := manager.GenerateContent(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "Hello" {
		t.Errorf("expected primary response, got %q", resp.Text())
	}
	if primary.callCount != 1 || secondary.callCount != 0 {
		t.Errorf("unexpected call counts: primary=%d secondary=%d", primary.callCount, secondary.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("expected 1 success log, got %d", len(logger.infoMessages))
	}
	if primary.lastReq.SystemInstruction.Parts[0].Text != "persona" {
		t.Errorf("system instruction was not forwarded")
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", err: errors.New("mock provider error")}
	secondary := &mockProvider{name: "secondary", response: textResponse("secondary", "Hi")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2}, logger)

	resp, err := manager.GenerateContent(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("expected secondary provider, got %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("expected primary to be retried twice, got %d", primary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("expected 1 failure log, got %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", err: errors.New("mock provider error")}
	secondary := &mockProvider{name: "secondary", response: textResponse("secondary", "Hi")}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: false, RetryAttempts: 1}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), testRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary should not be called when fallback is disabled")
	}
}

func TestGenerateContent_EmptyResponseIsFailure(t *testing.T) {
	primary := &mockProvider{name: "primary", response: textResponse("primary", "")}

	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), testRequest())
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", delay: time.Second, response: textResponse("slow", "late")}

	manager := NewManager([]Provider{slow}, &Config{RetryAttempts: 1, MaxTotalTimeout: 20 * time.Millisecond}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), testRequest())
	if !errors.Is(err, ErrProviderTimeout) {
		t.Fatalf("expected ErrProviderTimeout, got %v", err)
	}
}

func TestGenerateContent_InvalidRequestIsNotRetried(t *testing.T) {
	primary := &mockProvider{name: "primary", err: &ProviderError{Provider: "primary", Err: ErrInvalidRequest}}

	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 3}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), testRequest()); err == nil {
		t.Fatal("expected error")
	}
	if primary.callCount != 1 {
		t.Errorf("expected a single attempt, got %d", primary.callCount)
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, &Config{}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), testRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestInitializeProviders(t *testing.T) {
	t.Run("Sorted and filtered", func(t *testing.T) {
		providers, err := InitializeProviders(&config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 2, APIKey: "k2", Model: "gemini-2.5-pro"},
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k1", Model: "gemini-2.5-flash"},
				{Name: "gemini", Enabled: false, Priority: 3, APIKey: "k3", Model: "disabled"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(providers) != 2 {
			t.Fatalf("expected 2 providers, got %d", len(providers))
		}
		if providers[0].Model() != "gemini-2.5-flash" {
			t.Errorf("expected priority 1 first, got %s", providers[0].Model())
		}
	})

	t.Run("Qwen fallback", func(t *testing.T) {
		providers, err := InitializeProviders(&config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 2, APIKey: "k2", Model: "qwen-plus"},
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k1", Model: "gemini-2.5-flash"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(providers) != 2 || providers[0].Name() != "gemini" || providers[1].Name() != "qwen" {
			t.Fatalf("expected gemini then qwen, got %d providers", len(providers))
		}
	})

	t.Run("Unknown providers are skipped", func(t *testing.T) {
		_, err := InitializeProviders(&config.LLMConfig{
			Providers: []config.ProviderConfig{{Name: "unknown", Enabled: true, Priority: 1, APIKey: "k"}},
		})
		if err == nil {
			t.Fatal("expected error when no provider could be initialized")
		}
	})

	t.Run("Nothing enabled", func(t *testing.T) {
		_, err := InitializeProviders(&config.LLMConfig{})
		if !errors.Is(err, ErrNoProvidersConfigured) {
			t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})
}
