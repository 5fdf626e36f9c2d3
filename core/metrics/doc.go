// Package metrics exposes Prometheus instrumentation for the sync jobs.
//
// Counters and histograms are registered once at package init through
// promauto and recorded by the job services. The /metrics endpoint is
// served from the trigger server via the promhttp handler.
package metrics
