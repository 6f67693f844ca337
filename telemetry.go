// FILE: telemetry.go
// Package ticksim – Prometheus metrics for core observability, grounded on
// the teacher's metrics.go (CounterVec/GaugeVec registered in init(),
// served by promhttp in the teacher's main.go / here in
// cmd/ticksimdemo/main.go).

package ticksim

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	dataAnomaliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticksim_data_anomalies_total",
			Help: "Count of per-tick data anomalies observed (non-finite field, out-of-order timestamp, negative spread).",
		},
		[]string{"kind"},
	)

	invariantViolationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ticksim_invariant_violations_total",
			Help: "Count of fatal invariant violations that aborted a symbol's tick loop.",
		},
	)

	tradesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticksim_trades_total",
			Help: "Closed trades by outcome.",
		},
		[]string{"outcome"},
	)

	openPositions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ticksim_open_positions",
			Help: "1 if the pipeline currently holds an open position, else 0.",
		},
	)

	snapshotBuildSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ticksim_snapshot_build_seconds",
			Help:    "Wall-clock time spent updating all metrics and rebuilding the snapshot for one tick.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
		},
	)
)

func init() {
	prometheus.MustRegister(dataAnomaliesTotal, invariantViolationsTotal, tradesTotal, openPositions, snapshotBuildSeconds)
}

func recordAnomaly(kind DataAnomalyKind) {
	dataAnomaliesTotal.WithLabelValues(string(kind)).Inc()
}

func recordInvariantViolation() {
	invariantViolationsTotal.Inc()
}

func recordTrade(outcome Outcome) {
	tradesTotal.WithLabelValues(string(outcome)).Inc()
}

func setOpenPositions(open bool) {
	if open {
		openPositions.Set(1)
	} else {
		openPositions.Set(0)
	}
}

func observeSnapshotBuild(d time.Duration) {
	snapshotBuildSeconds.Observe(d.Seconds())
}
