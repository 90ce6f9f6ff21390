package main

import "errors"

// KnownMetrics is the set of metric names exported by dataset-pricer plus
// recording rule names referenced in dashboards and alerts. Histograms are
// listed by their _bucket series since that is what queries select.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"dpr_http_request_duration_seconds":        true,
	"dpr_http_request_duration_seconds_bucket": true,
	"dpr_http_requests_total":                  true,

	// Health metrics.
	"dpr_healthz_up": true,
	"dpr_readyz_up":  true,

	// Recommendation metrics.
	"dpr_recommendation_cache_total":   true,
	"dpr_snapshots_computed_total":     true,
	"dpr_recommended_price_usd":        true,
	"dpr_recommended_price_usd_bucket": true,

	// Price change metrics.
	"dpr_price_applies_total":        true,
	"dpr_guardrail_rejections_total": true,
	"dpr_audit_sink_failures_total":  true,

	// Reprice and scheduler metrics.
	"dpr_reprice_outcomes_total":           true,
	"dpr_reprice_duration_seconds":         true,
	"dpr_reprice_duration_seconds_bucket":  true,
	"dpr_reprice_last_run_timestamp":       true,
	"dpr_scheduler_next_reprice_timestamp": true,
	"dpr_scheduler_job_runs_total":         true,

	// Recording rules.
	"dpr:http_requests:rate5m":                  true,
	"dpr:http_errors:rate5m":                    true,
	"dpr:recommendation_cache_hit_ratio:rate5m": true,
	"dpr:guardrail_rejections:rate5m":           true,
	"dpr:reprice_outcomes:increase1h":           true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
