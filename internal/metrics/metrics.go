// Package metrics holds the prometheus collectors of the sync service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EntitySyncs counts per-entity outcomes of orchestrator passes.
	EntitySyncs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_sync_entities_total",
			Help: "Entities processed by the sync orchestrator",
		},
		[]string{"platform", "kind", "outcome"}, // outcome: created, updated, recovered, failed, skipped
	)

	// SyncJobs counts finished sync jobs.
	SyncJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_sync_jobs_total",
			Help: "Sync jobs by terminal outcome",
		},
		[]string{"platform", "outcome"}, // outcome: completed, error
	)

	SyncJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campaign_sync_job_duration_seconds",
			Help:    "Wall time of sync jobs",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		},
		[]string{"platform"},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "campaign_sync_circuit_breaker_state",
			Help: "Circuit breaker state per platform (0=closed, 1=half-open, 2=open)",
		},
		[]string{"platform"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_sync_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"platform", "from", "to"},
	)

	CircuitBreakerRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_sync_circuit_breaker_rejections_total",
			Help: "Sync attempts rejected by an open circuit breaker",
		},
		[]string{"platform"},
	)

	// PlatformRequests counts HTTP calls made by platform adapters.
	PlatformRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_sync_platform_requests_total",
			Help: "HTTP requests issued to ad platforms",
		},
		[]string{"platform", "method", "status"},
	)
)
