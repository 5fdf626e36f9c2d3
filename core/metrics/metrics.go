package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JobRunsTotal counts sync job runs by job name and outcome.
	JobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_job_runs_total",
			Help: "Total number of sync job runs",
		},
		[]string{"job", "outcome"},
	)

	// JobDuration records sync job run duration in seconds.
	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sync_job_duration_seconds",
			Help:    "Duration of sync job runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"job"},
	)

	// StockMovementsTotal counts stock adjustments posted by direction.
	StockMovementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_stock_movements_total",
			Help: "Total number of stock movements posted",
		},
		[]string{"action"},
	)

	// OrderChangesTotal counts detected purchase order changes by kind.
	OrderChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_order_changes_total",
			Help: "Total number of detected purchase order changes",
		},
		[]string{"kind"},
	)

	// MaterialsCreatedTotal counts materials and folders created on the
	// field-service platform.
	MaterialsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_materials_created_total",
			Help: "Total number of materials and folders created",
		},
		[]string{"kind"},
	)
)

// TrackJob records one job run. Call with the start time once the run
// finishes; err determines the outcome label.
func TrackJob(job string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	JobRunsTotal.WithLabelValues(job, outcome).Inc()
	JobDuration.WithLabelValues(job).Observe(time.Since(start).Seconds())
}

// RecordMovement increments the stock movement counter.
func RecordMovement(action string) {
	StockMovementsTotal.WithLabelValues(action).Inc()
}

// RecordOrderChange increments the order change counter.
func RecordOrderChange(kind string) {
	OrderChangesTotal.WithLabelValues(kind).Inc()
}

// RecordMaterialCreated increments the created-materials counter.
func RecordMaterialCreated(kind string) {
	MaterialsCreatedTotal.WithLabelValues(kind).Inc()
}
