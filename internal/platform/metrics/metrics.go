package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels shared by the counters below.
const (
	OutcomeSuccess    = "success"
	OutcomeRejected   = "rejected"
	OutcomeNetwork    = "network_error"
	OutcomeValidation = "validation_error"

	LookupHit     = "hit"
	LookupMiss    = "miss"
	LookupSkipped = "skipped"
	LookupFailed  = "failed"
	LookupStale   = "stale"
)

// Metrics holds the dashboard collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	BackendRequests   *prometheus.CounterVec
	OrderSubmissions  *prometheus.CounterVec
	TravelTimeLookups *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		BackendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "backend_requests_total",
			Help:      "Requests sent to the logistics backend by operation and outcome.",
		}, []string{"operation", "outcome"}),
		OrderSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "order_submissions_total",
			Help:      "Transport order submissions by outcome.",
		}, []string{"outcome"}),
		TravelTimeLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "travel_time_lookups_total",
			Help:      "Travel time lookups by result.",
		}, []string{"result"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dashboard",
			Name:      "http_request_duration_seconds",
			Help:      "Dashboard HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		m.BackendRequests,
		m.OrderSubmissions,
		m.TravelTimeLookups,
		m.HTTPDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
