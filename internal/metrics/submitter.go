package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "submitter",
		Name:      "submission_total",
		Help:      "Count of transaction submissions by kind and outcome.",
	}, []string{"kind", "status"})

	submissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "submitter",
		Name:      "submission_duration_seconds",
		Help:      "Time from validation to broadcast.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})

	confirmationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "submitter",
		Name:      "confirmation_total",
		Help:      "Count of confirmation outcomes by kind.",
	}, []string{"kind", "status"})

	confirmationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "submitter",
		Name:      "confirmation_duration_seconds",
		Help:      "Time from broadcast to a terminal outcome.",
		Buckets:   []float64{1, 2, 5, 10, 20, 30, 60, 120, 300},
	}, []string{"kind", "status"})
)

// Submitter tracks transaction submission metrics.
type Submitter struct{}

func NewSubmitter() *Submitter {
	return &Submitter{}
}

func (m *Submitter) ObserveSubmission(kind string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	submissionTotal.WithLabelValues(kind, status).Inc()
	submissionDuration.WithLabelValues(kind, status).Observe(time.Since(started).Seconds())
}

// ObserveConfirmation records a terminal outcome: confirmed, reverted or dropped.
func (m *Submitter) ObserveConfirmation(kind, status string, started time.Time) {
	confirmationTotal.WithLabelValues(kind, status).Inc()
	confirmationDuration.WithLabelValues(kind, status).Observe(time.Since(started).Seconds())
}
