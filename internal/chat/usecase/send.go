package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kodi-assistant/internal/chat"
	"kodi-assistant/internal/model"
	"kodi-assistant/pkg/llmprovider"
)

// Send runs one chat turn: validate, build the personalized instruction,
// call the model, schedule persistence and return the reply.
func (uc *implUseCase) Send(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	t, err := uc.validate(input)
	if err != nil {
		uc.metrics.ChatRequestsTotal.WithLabelValues(outcomeInvalidInput).Inc()
		return chat.SendOutput{}, err
	}

	record, found := uc.learningUC.ReadContext(ctx, t.userID)
	instruction := buildInstruction(BasePrompt, record, found, uc.cfg.ContextTopics)

	history := t.forwarded()
	reply, err := uc.generate(ctx, instruction, history)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Send generate userID=%s sessionID=%s: %v", t.userID, t.sessionID, err)
		return chat.SendOutput{}, err
	}

	uc.persist(ctx, t, reply, history)

	return chat.SendOutput{Text: reply, SessionID: t.sessionID}, nil
}

// generate calls the model under the configured timeout and classifies failures.
func (uc *implUseCase) generate(ctx context.Context, instruction string, history []model.ChatMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.ModelTimeout)
	defer cancel()

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Parts: []llmprovider.Part{{Text: instruction}}},
		Messages:          toProviderMessages(history),
		Temperature:       uc.cfg.Temperature,
		MaxTokens:         uc.cfg.MaxOutputTokens,
	}

	start := time.Now()
	resp, err := uc.gen.GenerateContent(ctx, req)
	elapsed := time.Since(start).Seconds()

	switch {
	case err != nil && (errors.Is(err, llmprovider.ErrProviderTimeout) || errors.Is(err, context.DeadlineExceeded)):
		uc.observeModel(outcomeModelTimeout, elapsed)
		return "", fmt.Errorf("%w: %v", chat.ErrModelTimeout, err)
	case err != nil && errors.Is(err, llmprovider.ErrEmptyResponse):
		uc.observeModel(outcomeModelError, elapsed)
		return "", fmt.Errorf("%w: %v", chat.ErrEmptyModelResponse, err)
	case err != nil:
		uc.observeModel(outcomeModelError, elapsed)
		return "", fmt.Errorf("%w: %v", chat.ErrModelUnavailable, err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		uc.observeModel(outcomeModelError, elapsed)
		return "", chat.ErrEmptyModelResponse
	}

	uc.observeModel(outcomeSuccess, elapsed)
	if resp.Usage != nil {
		uc.metrics.ModelTokensTotal.WithLabelValues("input").Add(float64(resp.Usage.InputTokens))
		uc.metrics.ModelTokensTotal.WithLabelValues("output").Add(float64(resp.Usage.OutputTokens))
	}
	return text, nil
}

func (uc *implUseCase) observeModel(outcome string, seconds float64) {
	uc.metrics.ChatRequestsTotal.WithLabelValues(outcome).Inc()
	uc.metrics.ModelDuration.WithLabelValues(outcome).Observe(seconds)
}

func toProviderMessages(history []model.ChatMessage) []llmprovider.Message {
	out := make([]llmprovider.Message, 0, len(history))
	for _, m := range history {
		parts := make([]llmprovider.Part, 0, len(m.Parts))
		for _, p := range m.Parts {
			parts = append(parts, llmprovider.Part{Text: p.Text})
		}
		out = append(out, llmprovider.Message{Role: string(m.Role), Parts: parts})
	}
	return out
}
