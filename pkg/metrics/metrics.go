package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the engine
type Metrics struct {
	OperationsTotal        *prometheus.CounterVec
	HistoryEntriesTotal    prometheus.Counter
	IntegrityChecksTotal   prometheus.Counter
	IntegrityFailuresTotal prometheus.Counter
	RequestCount           *prometheus.CounterVec
	RequestDuration        *prometheus.HistogramVec
}

// New registers all collectors with the default registry
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers all collectors with the given registerer. Tests pass a
// fresh registry so repeated construction does not clash.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OperationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kyc_engine_operations_total",
			Help: "Engine operations by name and outcome",
		}, []string{"operation", "outcome"}),
		HistoryEntriesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "kyc_history_entries_total",
			Help: "Total verdict entries appended to the status history",
		}),
		IntegrityChecksTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "kyc_history_integrity_checks_total",
			Help: "Total history hash-chain verification runs",
		}),
		IntegrityFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "kyc_history_integrity_failures_total",
			Help: "History hash-chain verification failures",
		}),
		RequestCount: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

// Observe records the outcome of one engine operation. A nil receiver is
// a no-op so callers without a collector skip instrumentation.
func (m *Metrics) Observe(operation string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.OperationsTotal.WithLabelValues(operation, outcome).Inc()
}
