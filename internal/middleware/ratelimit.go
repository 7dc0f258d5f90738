package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "kodi-assistant/pkg/errors"
	"kodi-assistant/pkg/response"
)

const (
	rateLimitGroupAPI    = "api"
	rateLimitGroupHealth = "health"
)

// RateLimitAPI limits chat, stats and history calls per client IP.
func (mw Middleware) RateLimitAPI() gin.HandlerFunc {
	return mw.rateLimit(mw.apiLimiter, rateLimitGroupAPI)
}

// RateLimitHealth limits health probes per client IP.
func (mw Middleware) RateLimitHealth() gin.HandlerFunc {
	return mw.rateLimit(mw.healthLimiter, rateLimitGroupHealth)
}

func (mw Middleware) rateLimit(rl *rateLimiter, group string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil {
			c.Next()
			return
		}

		// Forwarding headers count only when the peer is a trusted proxy.
		ip := c.ClientIP()
		if !rl.Allow(ip) {
			mw.l.Warnf(c.Request.Context(), "middleware.rateLimit: %s limit exceeded for %s", group, ip)
			mw.metrics.RateLimitedTotal.WithLabelValues(group).Inc()
			c.Header("Retry-After", "60")
			response.Error(c, pkgErrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per client with automatic expiry.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// newRateLimiter allows requestsPerMin per client, refilled evenly over the
// minute. A non-positive value disables limiting.
func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			10000,         // Max unique clients tracked
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: requestsPerMin,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
