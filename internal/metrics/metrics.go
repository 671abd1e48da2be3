// Package metrics registers the prometheus collectors exposed by the API
// server on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ShotsTotal counts every single-shot circuit execution, including shots
	// whose parity preparation failed.
	ShotsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "qcc",
		Subsystem: "coin",
		Name:      "shots_total",
		Help:      "Single-shot circuit executions against the backend.",
	})

	// TrialsTotal counts logical trials that produced a decoded index.
	TrialsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "qcc",
		Subsystem: "coin",
		Name:      "trials_total",
		Help:      "Trials that completed with a decoded counterfeit index.",
	})

	// PrepFailuresTotal counts parity preparations that collapsed into the
	// odd sector and had to be retried.
	PrepFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "qcc",
		Subsystem: "coin",
		Name:      "preparation_failures_total",
		Help:      "Parity preparations that landed in the odd sector.",
	})

	// SearchesTotal counts executed search sessions by final status.
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "qcc",
		Subsystem: "coin",
		Name:      "searches_total",
		Help:      "Executed search sessions by outcome.",
	}, []string{"status"})

	// ActiveSessions tracks sessions currently held by the session manager.
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "qcc",
		Subsystem: "coin",
		Name:      "active_sessions",
		Help:      "Search sessions currently tracked.",
	})
)
