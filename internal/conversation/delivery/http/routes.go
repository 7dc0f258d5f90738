package http

import (
	"github.com/gin-gonic/gin"

	"kodi-assistant/internal/middleware"
)

// RegisterRoutes maps the history endpoint on rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/history", mw.RateLimitAPI(), h.History)
	rg.POST("/history", mw.RateLimitAPI(), h.History)
}
