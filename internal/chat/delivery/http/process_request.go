package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "kodi-assistant/pkg/errors"
)

// maxBodyBytes bounds the chat body: 20 history entries and a 5000 character
// message fit comfortably.
const maxBodyBytes = 1 << 20

// processChatReq decodes the chat body, unwrapping {"data": {...}} when present.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		return req, pkgErrors.NewBadRequest(codeInvalidInput, "request body is too large or unreadable")
	}

	var env chatEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return req, pkgErrors.NewBadRequest(codeInvalidInput, "request body must be a JSON object")
	}
	if len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		body = env.Data
	}

	if err := json.Unmarshal(body, &req); err != nil {
		return req, pkgErrors.NewBadRequest(codeInvalidInput, "malformed chat request")
	}
	return req, req.validate()
}
