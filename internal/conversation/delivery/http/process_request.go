package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// processHistoryReq binds userId and limit from the query string (GET) or the JSON body (POST).
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
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
