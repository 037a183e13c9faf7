package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	watcherFetchPendingTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "watcher",
		Name:      "fetch_pending_total",
		Help:      "Count of attempts to load active tracked operations.",
	}, []string{"status"})

	watcherFetchPendingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "watcher",
		Name:      "fetch_pending_duration_seconds",
		Help:      "Duration of loading active tracked operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	watcherProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "watcher",
		Name:      "process_batch_total",
		Help:      "Count of processed batches.",
	}, []string{"status"})

	watcherProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "watcher",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing a batch of tracked operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	watcherProcessBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "watcher",
		Name:      "process_batch_size",
		Help:      "Number of tracked operations processed per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})

	watcherOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "watcher",
		Name:      "outcomes_total",
		Help:      "Count of per-operation outcomes of a watch pass.",
	}, []string{"outcome"})
)

// Watcher tracks metrics for the operation watcher loop.
type Watcher struct{}

// NewWatcher constructs a Watcher metrics collector.
func NewWatcher() *Watcher {
	return &Watcher{}
}

// ObserveFetchPending records loading of active tracked operations.
func (m Watcher) ObserveFetchPending(err error, started time.Time) {
	status := statusLabel(err)
	watcherFetchPendingTotal.WithLabelValues(status).Inc()
	watcherFetchPendingDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveProcessBatch records processing of a batch of tracked operations.
func (m Watcher) ObserveProcessBatch(err error, operations int, started time.Time) {
	status := statusLabel(err)
	watcherProcessBatchTotal.WithLabelValues(status).Inc()
	watcherProcessBatchDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	watcherProcessBatchSize.Observe(float64(operations))
}

// ObserveOutcome counts what a watch pass did with one operation.
func (m Watcher) ObserveOutcome(outcome string) {
	watcherOutcomesTotal.WithLabelValues(outcome).Inc()
}
