package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sequencerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sequencer_client",
		Name:      "operations_total",
		Help:      "Count of status service calls.",
	}, []string{"operation", "status"})
	sequencerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sequencer_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of status service calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// SequencerClient tracks metrics for calls to the sequencer status service.
type SequencerClient struct{}

// NewSequencerClient constructs a metrics collector for status service calls.
func NewSequencerClient() *SequencerClient {
	return &SequencerClient{}
}

// Observe records a single call outcome and duration.
func (m SequencerClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	sequencerRequestsTotal.WithLabelValues(operation, status).Inc()
	sequencerRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
