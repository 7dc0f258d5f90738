package http

import (
	"github.com/gin-gonic/gin"

	"kodi-assistant/pkg/response"
)

// Stats godoc
// @Summary     Learning statistics
// @Description Returns the learned topics and interaction count of a user.
// @Tags        Learning
// @Accept      json
// @Produce     json
// @Param       userId query string   false "User ID (GET)"
// @Param       body   body  statsReq false "User ID (POST)"
// @Success     200 {object} statsResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     429 {object} response.ErrorResp "Too Many Requests"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/stats [GET]
// @Router      /api/stats [POST]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStatsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Stats(ctx, req.UserID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}
