package http

import (
	"github.com/gin-gonic/gin"

	"kodi-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Sends the user's message with recent history to the model and returns the reply.
// @Description userParts accepts either strings or {text} objects.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body     chatReq true "Chat turn"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.ErrorResp "Invalid input"
// @Failure     429  {object} response.ErrorResp "Too Many Requests"
// @Failure     500  {object} response.ErrorResp "Model or internal error"
// @Failure     504  {object} response.ErrorResp "Model timeout"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Send(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Send: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}
