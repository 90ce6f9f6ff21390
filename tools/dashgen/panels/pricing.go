package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CacheHitRatio shows the share of recommendation lookups answered by a
// snapshot still inside the cache window.
func CacheHitRatio() *stat.PanelBuilder {
	return singleStat("Cache Hit %",
		"Recommendation lookups answered by a snapshot inside the cache window",
		`dpr:recommendation_cache_hit_ratio:rate5m * 100`, TSHeight, StatWidth).
		Unit("percent").
		Thresholds(ThresholdsRedGreen(50)).
		GraphMode(common.BigValueGraphModeArea)
}

// SnapshotsRate charts fresh snapshots persisted per second.
func SnapshotsRate() *timeseries.PanelBuilder {
	return timeSeries("Snapshots Computed", "Fresh pricing snapshots persisted per second", StatWidth).
		WithTarget(PromQuery(`sum(rate(dpr_snapshots_computed_total[5m]))`, "snapshots/s", "A")).
		Unit("ops")
}

// RecommendedPricePercentiles charts the median and p90 of freshly
// computed recommendations.
func RecommendedPricePercentiles() *timeseries.PanelBuilder {
	p := timeSeries("Recommended Price", "Median and 90th percentile of freshly computed recommendations", TSWidth).
		Unit("currencyUSD").
		Legend(TableLegend("mean", "max"))
	for _, q := range QuantileQueries("dpr_recommended_price_usd_bucket", "1h", 0.50, 0.90) {
		p = p.WithTarget(q)
	}
	return p
}

// AppliesByReason charts applied price changes by reason code.
func AppliesByReason() *timeseries.PanelBuilder {
	return timeSeries("Price Changes", "Applied price changes per second by reason", TSWidth).
		WithTarget(PromQuery(`sum by (reason) (rate(dpr_price_applies_total[5m]))`, "{{reason}}", "A")).
		Unit("ops").
		Legend(TableLegend("mean", "max"))
}

// GuardrailRejections charts blocked price changes by the bound violated.
func GuardrailRejections() *timeseries.PanelBuilder {
	return timeSeries("Guardrail Rejections", "Price changes blocked by a seller guardrail, by bound", TSWidth).
		WithTarget(PromQuery(`sum by (bound) (rate(dpr_guardrail_rejections_total[5m]))`, "{{bound}}", "A")).
		Unit("ops")
}

// AuditSinkFailures counts audit events the external log failed to record
// in the last day.
func AuditSinkFailures() *stat.PanelBuilder {
	return singleStat("Audit Sink Failures (24h)",
		"Price change events the external audit log failed to record",
		`increase(dpr_audit_sink_failures_total[24h])`, TSHeight, TSWidth).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
