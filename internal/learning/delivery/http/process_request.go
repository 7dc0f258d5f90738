package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// processStatsReq binds userId from the query string (GET) or the JSON body (POST).
func (h *handler) processStatsReq(c *gin.Context) (statsReq, error) {
	var req statsReq
	if c.Request.Method == http.MethodGet {
		if err := c.ShouldBindQuery(&req); err != nil {
			return req, err
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.UserID = strings.TrimSpace(req.UserID)
	return req, req.validate()
}
