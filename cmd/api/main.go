package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kodi-assistant/config"
	_ "kodi-assistant/docs" // Swagger docs
	chatUC "kodi-assistant/internal/chat/usecase"
	conversationUC "kodi-assistant/internal/conversation/usecase"
	"kodi-assistant/internal/httpserver"
	learningUC "kodi-assistant/internal/learning/usecase"
	"kodi-assistant/internal/middleware"
	"kodi-assistant/pkg/llmprovider"
	"kodi-assistant/pkg/log"
	"kodi-assistant/pkg/metrics"
	"kodi-assistant/pkg/topic"
)

// @title       Kodi AI Assistant API
// @description Programming tutor chat backend with per-user topic learning and conversation history.
// @version     2.0.0
// @host        localhost:8080
// @schemes     http https
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Kodi AI Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store driver: %s", cfg.Store.Driver)

	// 3. Metrics
	m := metrics.NewRegistry()

	// 4. Storage
	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open store: ", err)
		return
	}
	defer st.close()

	// 5. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelay,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
	}, logger)
	for _, p := range manager.Providers() {
		logger.Infof(ctx, "LLM provider: %s (%s)", p.Name(), p.Model())
	}

	// 6. Domains
	learning := learningUC.New(st.learning, logger, m, learningUC.Config{
		MaxTopics:   cfg.Learning.MaxTopics,
		ReadTimeout: cfg.Learning.ReadTimeout,
	})
	conversation := conversationUC.New(st.conversation, logger, conversationUC.Config{
		DefaultLimit: cfg.Conversation.DefaultLimit,
		MaxLimit:     cfg.Conversation.MaxLimit,
	})
	chat := chatUC.New(manager, learning, conversation, topic.NewDefaultExtractor(), logger, m, chatUC.Config{
		MaxMessageLength: cfg.Chat.MaxMessageLength,
		MaxHistory:       cfg.Chat.MaxHistory,
		DefaultUserID:    cfg.Chat.DefaultUserID,
		ModelTimeout:     cfg.Chat.ModelTimeout,
		ContextTopics:    cfg.Learning.ContextTopics,
		Temperature:      cfg.LLM.Temperature,
		MaxOutputTokens:  cfg.LLM.MaxOutputTokens,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.Config{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			APIPerMin:      cfg.RateLimit.APIPerMin,
			HealthPerMin:   cfg.RateLimit.HealthPerMin,
		},
		Metrics:        m,
		Store:          st.learning,
		StoreDriver:    cfg.Store.Driver,
		ChatUC:         chat,
		LearningUC:     learning,
		ConversationUC: conversation,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
