package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"kodi-assistant/pkg/qwen"
)

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		Messages:    make([]qwen.Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		qwenReq.System = joinParts(req.SystemInstruction.Parts)
	}
	for i, msg := range req.Messages {
		role := qwen.RoleUser
		if msg.Role == RoleModel {
			role = qwen.RoleAssistant
		}
		qwenReq.Messages[i] = qwen.Message{Role: role, Content: joinParts(msg.Parts)}
	}

	resp, err := a.client.Complete(ctx, qwenReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: classifyQwenError(ctx, err)}
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage.InputTokens = resp.Usage.InputTokens
		usage.OutputTokens = resp.Usage.OutputTokens
		usage.TotalTokens = resp.Usage.TotalTokens
	}

	return &Response{
		Content:      Message{Role: RoleModel, Parts: []Part{{Text: resp.Content}}},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

func classifyQwenError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrProviderTimeout, err)
	}
	if errors.Is(err, qwen.ErrNoChoices) {
		return fmt.Errorf("%w: %v", ErrEmptyResponse, err)
	}

	var apiErr *qwen.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
		case http.StatusBadRequest:
			return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
	}
	return err
}

func joinParts(parts []Part) string {
	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = p.Text
	}
	return strings.Join(texts, "\n")
}
