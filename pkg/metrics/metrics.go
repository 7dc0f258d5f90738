// Package metrics exposes the Prometheus instruments of the assistant.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kodi"

// Metrics holds every collector registered by the service.
// All operations are safe for concurrent use.
type Metrics struct {
	// HTTPRequestsTotal counts requests by method, route and status code.
	HTTPRequestsTotal *prometheus.CounterVec
	// HTTPRequestDuration measures request latency by method and route.
	HTTPRequestDuration *prometheus.HistogramVec
	// RateLimitedTotal counts requests rejected by the limiter, by route group.
	RateLimitedTotal *prometheus.CounterVec

	// ChatRequestsTotal counts chat turns by outcome (success, invalid_input, model_error, model_timeout).
	ChatRequestsTotal *prometheus.CounterVec
	// ModelDuration measures model call latency by outcome.
	ModelDuration *prometheus.HistogramVec
	// ModelTokensTotal counts tokens by direction (input, output).
	ModelTokensTotal *prometheus.CounterVec

	// PersistenceFailuresTotal counts failed background writes by store (conversation, learning).
	PersistenceFailuresTotal *prometheus.CounterVec
	// LearningReadDegradedTotal counts learning reads that failed open.
	LearningReadDegradedTotal prometheus.Counter
	// TopicsLearnedTotal counts topics extracted from chat turns.
	TopicsLearnedTotal *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers all collectors on reg. reg is usually a fresh *prometheus.Registry;
// prometheus.DefaultRegisterer works too but panics on a second call.
func New(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		RateLimitedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-client rate limiter.",
		}, []string{"group"}),
		ChatRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "Chat turns by outcome.",
		}, []string{"outcome"}),
		ModelDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "model_duration_seconds",
			Help:      "Latency of the generative model call.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30},
		}, []string{"outcome"}),
		ModelTokensTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "model_tokens_total",
			Help:      "Tokens consumed by the generative model.",
		}, []string{"direction"}),
		PersistenceFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "persistence_failures_total",
			Help:      "Background writes that failed after a chat turn.",
		}, []string{"store"}),
		LearningReadDegradedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "learning_read_degraded_total",
			Help:      "Learning profile reads that failed and were treated as absent.",
		}),
		TopicsLearnedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "learning",
			Name:      "topics_total",
			Help:      "Topics extracted from chat turns.",
		}, []string{"topic"}),
		gatherer: gatherer,
	}
}

// NewRegistry creates Metrics on a private registry that also carries the Go
// runtime and process collectors.
func NewRegistry() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return New(reg, reg)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
