package usecase

import (
	"context"

	"kodi-assistant/internal/conversation"
	"kodi-assistant/internal/learning"
	"kodi-assistant/internal/model"
)

const (
	storeConversation = "conversation"
	storeLearning     = "learning"
)

// persist records the turn and its topics in two independent background jobs.
// They outlive the request, so ctx keeps its values but loses its cancellation.
func (uc *implUseCase) persist(ctx context.Context, t turn, reply string, history []model.ChatMessage) {
	ctx = context.WithoutCancel(ctx)

	if !uc.acquireJobs(2) {
		uc.l.Warnf(ctx, "uc.persist userID=%s sessionID=%s: shutting down, turn not persisted", t.userID, t.sessionID)
		uc.metrics.PersistenceFailuresTotal.WithLabelValues(storeConversation).Inc()
		uc.metrics.PersistenceFailuresTotal.WithLabelValues(storeLearning).Inc()
		return
	}

	go func() {
		defer uc.jobDone()
		uc.appendConversation(ctx, t, reply, history)
	}()
	go func() {
		defer uc.jobDone()
		uc.learn(ctx, t, reply)
	}()
}

func (uc *implUseCase) appendConversation(ctx context.Context, t turn, reply string, history []model.ChatMessage) {
	ctx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	_, err := uc.conversationUC.Append(ctx, conversation.AppendInput{
		UserID:      t.userID,
		SessionID:   t.sessionID,
		UserMessage: t.userMessage,
		AIResponse:  reply,
		ChatHistory: history,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.persist conversation userID=%s sessionID=%s: %v", t.userID, t.sessionID, err)
		uc.metrics.PersistenceFailuresTotal.WithLabelValues(storeConversation).Inc()
	}
}

func (uc *implUseCase) learn(ctx context.Context, t turn, reply string) {
	topics := uc.extractor.Extract(t.userMessage, reply)
	if len(topics) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	if _, err := uc.learningUC.Upsert(ctx, learning.UpsertInput{UserID: t.userID, Topics: topics}); err != nil {
		uc.l.Warnf(ctx, "uc.persist learning userID=%s topics=%v: %v", t.userID, topics, err)
		uc.metrics.PersistenceFailuresTotal.WithLabelValues(storeLearning).Inc()
		return
	}
	uc.l.Debugf(ctx, "uc.persist learning userID=%s topics=%v", t.userID, topics)
}
