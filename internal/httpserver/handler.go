package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	pkgErrors "kodi-assistant/pkg/errors"
	"kodi-assistant/pkg/response"
)

// apiPrefix is the path prefix existing clients call. Domain routes are served
// both under it and at the root.
const apiPrefix = "/api"

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	srv.gin.NoRoute(func(c *gin.Context) {
		response.Error(c, pkgErrors.ErrNotFound)
	})

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		gin.Recovery(),
		srv.mw.RequestID(),
		srv.mw.Logger(),
		srv.mw.SecurityHeaders(),
		srv.mw.CORS(),
	)

	srv.l.Infof(context.Background(), "CORS mode: %s", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.rootInfo)

	health := srv.mw.RateLimitHealth()
	srv.gin.GET("/health", health, srv.healthCheck)
	srv.gin.GET("/ready", health, srv.readyCheck)
	srv.gin.GET("/live", health, srv.liveCheck)
	srv.gin.GET(apiPrefix+"/health", health, srv.healthCheck)

	srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	for _, rg := range []*gin.RouterGroup{srv.gin.Group(""), srv.gin.Group(apiPrefix)} {
		srv.setupChatDomain(rg)
		srv.setupLearningDomain(rg)
		srv.setupConversationDomain(rg)
	}

	srv.l.Infof(ctx, "Domain routes registered at / and %s (store: %s)", apiPrefix, srv.storeDriver)
	return nil
}
