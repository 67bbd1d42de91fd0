package trainer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	selectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mentalcalc",
			Subsystem: "trainer",
			Name:      "selections_total",
			Help:      "Total number of method selections by optimal method",
		},
		[]string{"method"},
	)

	selectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mentalcalc",
			Subsystem: "trainer",
			Name:      "selection_duration_seconds",
			Help:      "Method selection duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)

	rankingCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mentalcalc",
			Subsystem: "trainer",
			Name:      "ranking_cache_lookups_total",
			Help:      "Ranking cache lookups by result",
		},
		[]string{"result"},
	)

	attemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mentalcalc",
			Subsystem: "trainer",
			Name:      "attempts_total",
			Help:      "Recorded learner attempts by method and correctness",
		},
		[]string{"method", "correct"},
	)
)
