package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchesTotal counts rate fetches by outcome status
	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "converter_rate_fetches_total",
			Help: "Total number of rate fetches by status",
		},
		[]string{"widget", "status"},
	)

	// FetchDuration observes rate fetch latency
	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "converter_rate_fetch_duration_seconds",
			Help:    "Duration of rate fetches",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"widget"},
	)

	// RecomputesTotal counts calculator runs
	RecomputesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "converter_recomputes_total",
			Help: "Total number of recomputations",
		},
		[]string{"widget"},
	)

	// MountsTotal counts mount attempts by result
	MountsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "converter_mounts_total",
			Help: "Total number of widget mounts by result",
		},
		[]string{"result"},
	)
)
