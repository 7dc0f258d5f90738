package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "kodi-assistant/pkg/errors"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error renders err. HTTPErrors keep their status and code; anything else is
// treated as a request binding failure and answered with 400.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.AbortWithStatusJSON(httpErr.StatusCode, ErrorResp{
			Error:   httpErr.Code,
			Message: httpErr.Message,
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResp{
		Error:   CodeInvalidInput,
		Message: err.Error(),
	})
}

// InternalError sends 500 without leaking err to the client.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResp{
		Error:   pkgErrors.ErrInternalServerError.Code,
		Message: DefaultErrorMessage,
	})
}
