// Package metrics defines Prometheus metrics for dataset-pricer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dpr"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last /healthz probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last /readyz probe succeeded (1) or failed (0).",
	})
)

// Recommendation metrics.
var (
	RecommendationCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendation_cache_total",
		Help:      "Snapshot cache lookups by result (hit or miss).",
	}, []string{"result"})

	SnapshotsComputedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshots_computed_total",
		Help:      "Total number of pricing snapshots computed and persisted.",
	})

	RecommendedPriceUSD = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "recommended_price_usd",
		Help:      "Distribution of recommended prices in USD.",
		Buckets:   prometheus.ExponentialBuckets(50, 2, 12), // 50, 100, ..., 102400
	})
)

// Apply metrics.
var (
	PriceAppliesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_applies_total",
		Help:      "Total number of applied price changes by reason.",
	}, []string{"reason"})

	GuardrailRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guardrail_rejections_total",
		Help:      "Total number of price changes rejected by a seller guardrail.",
	}, []string{"bound"})

	AuditSinkFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_sink_failures_total",
		Help:      "Total number of audit-log events the external sink failed to record.",
	})
)

// Batch reprice metrics.
var (
	RepriceOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reprice_outcomes_total",
		Help:      "Per-item outcomes of batch reprice runs by status.",
	}, []string{"status"})

	RepriceDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "reprice_duration_seconds",
		Help:      "Duration of batch reprice runs in seconds.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	RepriceLastRunTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "reprice_last_run_timestamp",
		Help:      "Unix timestamp of the last completed batch reprice run.",
	})
)

// Scheduler metrics.
var (
	SchedulerNextRepriceTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_reprice_timestamp",
		Help:      "Unix timestamp of the next scheduled auto-reprice run.",
	})

	SchedulerJobRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scheduler_job_runs_total",
		Help:      "Scheduled job executions by job name and final status.",
	}, []string{"job_name", "status"})
)
