package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	queriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medref_queries_total",
			Help: "Total query count by query type and outcome",
		},
		[]string{"query", "outcome"},
	)

	datasetsLoaded = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "medref_dataset_loaded",
			Help: "Whether a reference dataset loaded at startup (1) or is absent (0)",
		},
		[]string{"dataset"},
	)

	initOnce sync.Once
)

// Init registers the collectors. Must be called once at startup.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(queriesTotal, datasetsLoaded)
	})
}

// RecordQuery counts one query by type and outcome.
func RecordQuery(query, outcome string) {
	queriesTotal.WithLabelValues(query, outcome).Inc()
}

// SetDatasetLoaded records a dataset's load state.
func SetDatasetLoaded(dataset string, loaded bool) {
	v := 0.0
	if loaded {
		v = 1.0
	}
	datasetsLoaded.WithLabelValues(dataset).Set(v)
}
