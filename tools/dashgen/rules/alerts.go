package rules

// AlertRules returns the operational alerts for dataset-pricer.
func AlertRules() PrometheusRule {
	return newPrometheusRule("dpr-alerts", "dpr-alerts",
		alert("DprDown",
			`absent(up{job="dataset-pricer"})`, "2m", severityCritical,
			"Dataset Pricer is down",
			"The dataset-pricer job has been absent for more than 2 minutes."),
		alert("DprReadinessDown",
			`dpr_readyz_up == 0`, "2m", severityCritical,
			"Dataset Pricer readiness check is failing",
			"The database has been unreachable from the readiness probe for more than 2 minutes."),
		alert("DprHighErrorRate",
			`dpr:http_errors:rate5m / dpr:http_requests:rate5m > 0.05`, "5m", severityWarning,
			"High HTTP error rate on Dataset Pricer",
			"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
		alert("DprRepriceItemErrors",
			`dpr:reprice_outcomes:increase1h{status="error"} > 0`, "", severityWarning,
			"Batch reprice produced item errors",
			"At least one auto-priced item failed to reprice in the last hour."),
		alert("DprRepriceJobFailed",
			`increase(dpr_scheduler_job_runs_total{job_name="auto_reprice",status="failed"}[1h]) > 0`, "", severityCritical,
			"Scheduled auto-reprice run failed",
			"The auto_reprice job could not list auto-priced items; no prices were batch-applied."),
		alert("DprRepriceStale",
			`time() - dpr_reprice_last_run_timestamp > 172800`, "10m", severityWarning,
			"No batch reprice in 48 hours",
			"The last completed batch reprice run is more than 48 hours old."),
		alert("DprAuditSinkFailures",
			`increase(dpr_audit_sink_failures_total[5m]) > 0`, "1m", severityWarning,
			"Audit log delivery failures detected",
			"One or more price change events failed to reach the external audit log."),
		alert("DprGuardrailRejectionsHigh",
			`dpr:guardrail_rejections:rate5m > 0.1`, "15m", severityInfo,
			"Many price changes are hitting guardrails",
			"Guardrail rejections have exceeded 0.1/s for 15 minutes; recommendations may be drifting from seller bounds."),
	)
}
