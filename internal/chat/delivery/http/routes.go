package http

import (
	"github.com/gin-gonic/gin"

	"kodi-assistant/internal/middleware"
)

// RegisterRoutes maps the chat endpoint on rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimitAPI(), h.Chat)
}
