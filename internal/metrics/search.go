package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search pipeline Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sitesearch",
			Name:      "searches_total",
			Help:      "Total number of quick-search invocations",
		},
		[]string{"surface"},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sitesearch",
			Name:      "search_duration_seconds",
			Help:      "Quick-search invocation duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	SearchHitsScanned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sitesearch",
			Name:      "search_hits_scanned_total",
			Help:      "Raw index hits consumed before early termination",
		},
	)

	SearchDuplicatesCollapsed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sitesearch",
			Name:      "search_duplicates_collapsed_total",
			Help:      "Hits merged into an already-accepted entry for the same item",
		},
	)

	SearchHiddenSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sitesearch",
			Name:      "search_hidden_skipped_total",
			Help:      "Hits skipped because the item or an ancestor is hidden",
		},
	)

	SearchResultsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sitesearch",
			Name:      "search_results_dropped_total",
			Help:      "Accepted hits dropped at formatting time",
		},
		[]string{"reason"}, // "unresolved" / "untitled" / "no_icon"
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchHitsScanned)
	prometheus.MustRegister(SearchDuplicatesCollapsed)
	prometheus.MustRegister(SearchHiddenSkipped)
	prometheus.MustRegister(SearchResultsDropped)
	searchMetricsRegistered = true
}
