// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storekeep"

// Metrics groups the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	sequenceIssued *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// New registers the collectors on reg. A nil registerer yields a no-op instance.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	sequenceIssued := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sequence_values_issued_total",
		Help:      "Counter values handed out by the sequence generator.",
	}, []string{"counter"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	reg.MustRegister(sequenceIssued, httpDuration)
	return &Metrics{
		sequenceIssued: sequenceIssued,
		httpDuration:   httpDuration,
	}
}

// SequenceIssued counts one value issued from the named counter.
func (m *Metrics) SequenceIssued(counter string) {
	if m == nil || m.sequenceIssued == nil {
		return
	}
	m.sequenceIssued.WithLabelValues(normalizeLabel(counter)).Inc()
}

// ObserveHTTP records one request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil || m.httpDuration == nil {
		return
	}
	m.httpDuration.
		WithLabelValues(method, normalizeLabel(route), strconv.Itoa(status)).
		Observe(d.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
