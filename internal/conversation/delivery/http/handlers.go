package http

import (
	"github.com/gin-gonic/gin"

	"kodi-assistant/pkg/response"
)

// History godoc
// @Summary     Conversation history
// @Description Returns the most recent chat turns of a user, newest first.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       userId query string     false "User ID (GET)"
// @Param       limit  query int        false "Number of turns (default 10, max 100)"
// @Param       body   body  historyReq false "User ID and limit (POST)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     429 {object} response.ErrorResp "Too Many Requests"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/history [GET]
// @Router      /api/history [POST]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListRecent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRecent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
