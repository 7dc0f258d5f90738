package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"kodi-assistant/pkg/gemini"
	"kodi-assistant/pkg/qwen"
)

func TestGeminiAdapter(t *testing.T) {
	status := http.StatusOK
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if status == http.StatusOK {
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Отговор"}],"role":"model"}}],
				"usageMetadata":{"promptTokenCount":5,"candidatesTokenCount":2,"totalTokenCount":7}}`))
		}
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "k", Model: "m", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	adapter := NewGeminiAdapter(client)

	t.Run("Converts response", func(t *testing.T) {
		status = http.StatusOK
		resp, err := adapter.GenerateContent(context.Background(), testRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "Отговор" || resp.ProviderName != "gemini" || resp.ModelName != "m" {
			t.Errorf("unexpected response: %+v", resp)
		}
		if resp.Usage.TotalTokens != 7 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("Rate limited", func(t *testing.T) {
		status = http.StatusTooManyRequests
		_, err := adapter.GenerateContent(context.Background(), testRequest())
		if !errors.Is(err, ErrProviderRateLimited) {
			t.Fatalf("expected ErrProviderRateLimited, got %v", err)
		}
		var pErr *ProviderError
		if !errors.As(err, &pErr) || pErr.Provider != "gemini" {
			t.Errorf("expected ProviderError for gemini, got %v", err)
		}
	})
}

func TestQwenAdapter(t *testing.T) {
	var roles []string
	status := http.StatusOK
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Role string `json:"role"`
			} `json:"messages"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		roles = roles[:0]
		for _, m := range body.Messages {
			roles = append(roles, m.Role)
		}
		w.WriteHeader(status)
		if status == http.StatusOK {
			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Отговор"}}],
				"usage":{"prompt_tokens":3,"completion_tokens":1,"total_tokens":4}}`))
		}
	}))
	defer ts.Close()

	client, err := qwen.New(qwen.Config{APIKey: "k", Model: "qm", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	adapter := NewQwenAdapter(client)

	t.Run("Maps roles and response", func(t *testing.T) {
		status = http.StatusOK
		req := &Request{
			SystemInstruction: &Message{Parts: []Part{{Text: "persona"}}},
			Messages: []Message{
				{Role: RoleUser, Parts: []Part{{Text: "a"}}},
				{Role: RoleModel, Parts: []Part{{Text: "b"}}},
				{Role: RoleUser, Parts: []Part{{Text: "c"}}},
			},
		}
		resp, err := adapter.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"system", "user", "assistant", "user"}
		if len(roles) != len(want) {
			t.Fatalf("expected roles %v, got %v", want, roles)
		}
		for i := range want {
			if roles[i] != want[i] {
				t.Errorf("role %d: expected %s, got %s", i, want[i], roles[i])
			}
		}
		if resp.Text() != "Отговор" || resp.ProviderName != "qwen" || resp.ModelName != "qm" || resp.Usage.TotalTokens != 4 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("Bad request", func(t *testing.T) {
		status = http.StatusBadRequest
		_, err := adapter.GenerateContent(context.Background(), testRequest())
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
	})
}
