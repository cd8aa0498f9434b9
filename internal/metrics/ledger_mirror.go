// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crowdsync"

var (
	mirrorRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_mirror",
		Name:      "refresh_total",
		Help:      "Count of ledger refreshes by outcome.",
	}, []string{"status"})

	mirrorRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_mirror",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of a full ledger refresh.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	mirrorProposals = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ledger_mirror",
		Name:      "proposals",
		Help:      "Number of proposals in the last applied snapshot.",
	})

	mirrorReadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_mirror",
		Name:      "read_total",
		Help:      "Count of single ledger reads.",
	}, []string{"op", "status"})

	mirrorReadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_mirror",
		Name:      "read_duration_seconds",
		Help:      "Duration of single ledger reads.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op", "status"})
)

// LedgerMirror tracks refresh and read metrics of the ledger mirror.
type LedgerMirror struct{}

func NewLedgerMirror() *LedgerMirror {
	return &LedgerMirror{}
}

// ObserveRefresh records a refresh outcome. proposals is only meaningful
// for applied refreshes.
func (m *LedgerMirror) ObserveRefresh(status string, proposals int, started time.Time) {
	mirrorRefreshTotal.WithLabelValues(status).Inc()
	mirrorRefreshDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if status == "success" {
		mirrorProposals.Set(float64(proposals))
	}
}

func (m *LedgerMirror) ObserveRead(op string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	mirrorReadTotal.WithLabelValues(op, status).Inc()
	mirrorReadDuration.WithLabelValues(op, status).Observe(time.Since(started).Seconds())
}
