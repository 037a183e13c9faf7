package metrics

import (
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/trackerr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	trackerPollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "polls_total",
		Help:      "Count of finished polling loops by outcome.",
	}, []string{"loop", "outcome"})
	trackerPollAttempts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "poll_attempts",
		Help:      "Attempts spent per polling loop.",
		Buckets:   []float64{1, 2, 3, 5, 10, 20, 30, 60},
	}, []string{"loop", "outcome"})
	trackerPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "poll_duration_seconds",
		Help:      "Wall time of polling loops.",
		Buckets:   []float64{.1, .5, 1, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"loop", "outcome"})
)

// Tracker tracks metrics for operation id resolution and terminal waits.
type Tracker struct{}

// NewTracker constructs a Tracker metrics collector.
func NewTracker() *Tracker {
	return &Tracker{}
}

// ObserveResolve records a finished resolution loop.
func (m Tracker) ObserveResolve(err error, attempts int, started time.Time) {
	m.observe("resolve", err, attempts, started)
}

// ObserveWait records a finished wait-for-terminal loop.
func (m Tracker) ObserveWait(err error, attempts int, started time.Time) {
	m.observe("wait", err, attempts, started)
}

func (m Tracker) observe(loop string, err error, attempts int, started time.Time) {
	outcome := "success"
	if err != nil {
		outcome = trackerr.KindOf(err).String()
	}
	trackerPollsTotal.WithLabelValues(loop, outcome).Inc()
	trackerPollAttempts.WithLabelValues(loop, outcome).Observe(float64(attempts))
	trackerPollDuration.WithLabelValues(loop, outcome).Observe(time.Since(started).Seconds())
}
