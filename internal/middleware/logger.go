package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kodi-assistant/pkg/log"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// RequestID reuses an incoming X-Request-ID or generates one, and stores it in
// the request context for the logger.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Logger logs one line per request and records HTTP metrics.
func (mw Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		mw.metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		mw.metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(latency.Seconds())

		ctx := c.Request.Context()
		msg := "%s %s %d %s ip=%s ua=%q"
		args := []any{c.Request.Method, c.Request.URL.Path, status, latency, c.ClientIP(), c.Request.UserAgent()}
		switch {
		case status >= 500:
			mw.l.Errorf(ctx, msg, args...)
		case status >= 400:
			mw.l.Warnf(ctx, msg, args...)
		default:
			mw.l.Infof(ctx, msg, args...)
		}
	}
}
