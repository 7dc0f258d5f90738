package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kodi-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "2.0.0"
	ServiceName   = "Kodi AI Assistant"

	readyTimeout = 3 * time.Second
)

func (srv HTTPServer) statusBody(status string) gin.H {
	return gin.H{
		"status":      status,
		"service":     ServiceName,
		"version":     HealthVersion,
		"environment": srv.environment,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.statusBody("healthy"))
}

// readyCheck pings the document store.
// @Summary Readiness Check
// @Description Check if the API and its document store are ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Store unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := srv.store.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %s store unavailable: %v", srv.storeDriver, err)
		body := srv.statusBody("not_ready")
		body["database"] = "unavailable"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	body := srv.statusBody("ready")
	body["database"] = "ok"
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.statusBody("alive"))
}

// rootInfo lists the public endpoints.
func (srv HTTPServer) rootInfo(c *gin.Context) {
	response.OK(c, gin.H{
		"service": ServiceName,
		"version": HealthVersion,
		"endpoints": gin.H{
			"chat":    "POST " + apiPrefix + "/chat",
			"stats":   "GET|POST " + apiPrefix + "/stats",
			"history": "GET|POST " + apiPrefix + "/history",
			"health":  "GET /health",
			"ready":   "GET /ready",
			"metrics": "GET /metrics",
			"docs":    "GET /swagger/index.html",
		},
	})
}
