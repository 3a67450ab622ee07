// Package metrics provides Prometheus metrics for loading and serving shapes.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CSV loading
	RowsRead = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aisc_rows_read_total",
			Help: "Total number of source rows converted into shape records",
		},
		[]string{"family"},
	)

	ConversionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aisc_conversion_failures_total",
			Help: "Total number of rows rejected for a missing mandatory property",
		},
		[]string{"family"},
	)

	// Store
	RecordsStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aisc_records_stored_total",
			Help: "Total number of shape records written to the store",
		},
		[]string{"family"},
	)

	StoreQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aisc_store_queries_total",
			Help: "Total number of store operations",
		},
		[]string{"op", "family", "status"},
	)

	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aisc_store_query_duration_seconds",
			Help:    "Time taken by store operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"op", "family"},
	)
)

// RecordRead counts a converted row.
func RecordRead(family string) {
	RowsRead.WithLabelValues(family).Inc()
}

// RecordConversionFailure counts a rejected row.
func RecordConversionFailure(family string) {
	ConversionFailures.WithLabelValues(family).Inc()
}

// RecordStored counts records written by one store operation.
func RecordStored(family string, n int) {
	RecordsStored.WithLabelValues(family).Add(float64(n))
}

// ObserveQuery records the outcome and duration of a store operation.
func ObserveQuery(op, family string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	StoreQueries.WithLabelValues(op, family, status).Inc()
	StoreQueryDuration.WithLabelValues(op, family).Observe(time.Since(start).Seconds())
}

// WriteTextfile writes every registered metric to path in the text
// exposition format, for the node exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
