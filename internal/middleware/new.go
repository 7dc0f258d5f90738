package middleware

import (
	"strings"

	"kodi-assistant/pkg/log"
	"kodi-assistant/pkg/metrics"
)

// Config configures the HTTP middleware chain.
type Config struct {
	AllowedOrigins []string
	APIPerMin      int
	HealthPerMin   int
}

type Middleware struct {
	l              log.Logger
	metrics        *metrics.Metrics
	allowedOrigins map[string]struct{}
	apiLimiter     *rateLimiter
	healthLimiter  *rateLimiter
}

func New(l log.Logger, m *metrics.Metrics, cfg Config) Middleware {
	origins := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		origins[strings.TrimRight(strings.TrimSpace(o), "/")] = struct{}{}
	}

	return Middleware{
		l:              l,
		metrics:        m,
		allowedOrigins: origins,
		apiLimiter:     newRateLimiter(cfg.APIPerMin),
		healthLimiter:  newRateLimiter(cfg.HealthPerMin),
	}
}
