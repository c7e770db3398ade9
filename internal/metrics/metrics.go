package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics exposed by the gateway.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration prometheus.Histogram
	UpstreamCalls   *prometheus.CounterVec
	UpstreamErrors  *prometheus.CounterVec
}

// New registers gateway metrics under the given namespace.
func New(namespace string) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "The total number of handled HTTP requests",
		}, []string{"method", "status"}),
		RequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Time taken to handle HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}),
		UpstreamCalls: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_calls_total",
			Help:      "The total number of calls made to the core backend",
		}, []string{"operation"}),
		UpstreamErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_errors_total",
			Help:      "The total number of failed core backend calls",
		}, []string{"operation"}),
	}
}
