package httpserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"kodi-assistant/internal/chat"
	"kodi-assistant/internal/conversation"
	"kodi-assistant/internal/learning"
	"kodi-assistant/internal/middleware"
	"kodi-assistant/pkg/log"
	"kodi-assistant/pkg/metrics"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware
	metrics         *metrics.Metrics

	// Storage
	store       Pinger
	storeDriver string

	// Domains
	chatUC         chat.UseCase
	learningUC     learning.UseCase
	conversationUC conversation.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	TrustedProxies  []string
	Middleware      middleware.Config
	Metrics         *metrics.Metrics

	Store       Pinger
	StoreDriver string

	ChatUC         chat.UseCase
	LearningUC     learning.UseCase
	ConversationUC conversation.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	m := cfg.Metrics
	if m == nil {
		m = metrics.NewRegistry()
	}
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 15 * time.Second
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: shutdownTimeout,
		mw:              middleware.New(logger, m, cfg.Middleware),
		metrics:         m,
		store:           cfg.Store,
		storeDriver:     cfg.StoreDriver,
		chatUC:          cfg.ChatUC,
		learningUC:      cfg.LearningUC,
		conversationUC:  cfg.ConversationUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	// nil trusts no proxy: the client address is the TCP peer.
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.store == nil {
		return errors.New("store is required")
	}
	if srv.chatUC == nil || srv.learningUC == nil || srv.conversationUC == nil {
		return errors.New("chat, learning and conversation use cases are required")
	}
	return nil
}
