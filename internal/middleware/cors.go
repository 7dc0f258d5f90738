package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "kodi-assistant/pkg/errors"
	"kodi-assistant/pkg/response"
)

const (
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
	corsMaxAge       = "86400"
)

// CORS allows requests without an Origin header (curl, server to server) and
// requests from the configured origins. Anything else is rejected with 403.
func (mw Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		if _, ok := mw.allowedOrigins[strings.TrimRight(origin, "/")]; !ok {
			mw.l.Warnf(c.Request.Context(), "middleware.CORS: blocked origin %s", origin)
			response.Error(c, pkgErrors.ErrForbiddenOrigin)
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Add("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Max-Age", corsMaxAge)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
