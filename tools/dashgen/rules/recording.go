package rules

// RecordingRules returns the pre-computed series that dashboards and alert
// rules read instead of repeating the raw rate expressions.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("dpr-recording-rules", "dpr-recording",
		record("dpr:http_requests:rate5m",
			`sum(rate(dpr_http_requests_total[5m]))`),
		record("dpr:http_errors:rate5m",
			`sum(rate(dpr_http_requests_total{status=~"5.."}[5m]))`),
		record("dpr:recommendation_cache_hit_ratio:rate5m",
			`sum(rate(dpr_recommendation_cache_total{result="hit"}[5m])) / sum(rate(dpr_recommendation_cache_total[5m]))`),
		record("dpr:guardrail_rejections:rate5m",
			`sum(rate(dpr_guardrail_rejections_total[5m]))`),
		record("dpr:reprice_outcomes:increase1h",
			`sum by (status) (increase(dpr_reprice_outcomes_total[1h]))`),
	)
}
