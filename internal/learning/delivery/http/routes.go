package http

import (
	"github.com/gin-gonic/gin"

	"kodi-assistant/internal/middleware"
)

// RegisterRoutes maps the stats endpoint on rg. Both verbs are rate limited
// with the API budget.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/stats", mw.RateLimitAPI(), h.Stats)
	rg.POST("/stats", mw.RateLimitAPI(), h.Stats)
}
