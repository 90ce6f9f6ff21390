package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RepriceOutcomes charts hourly batch outcomes by status as bars.
func RepriceOutcomes() *timeseries.PanelBuilder {
	return timeSeries("Reprice Outcomes", "Per-item batch reprice outcomes per hour (applied, skipped, error)", TSWidth).
		WithTarget(PromQuery(`dpr:reprice_outcomes:increase1h`, "{{status}}", "A")).
		FillOpacity(30).
		LineWidth(1).
		Legend(TableLegend("sum")).
		DrawStyle(common.GraphDrawStyleBars)
}

// RepriceDuration charts the p95 duration of batch runs.
func RepriceDuration() *timeseries.PanelBuilder {
	p := timeSeries("Reprice Duration (p95)", "95th percentile duration of batch reprice runs", StatWidth).
		Unit("s")
	for _, q := range QuantileQueries("dpr_reprice_duration_seconds_bucket", "6h", 0.95) {
		p = p.WithTarget(q)
	}
	return p
}

// LastRepriceAge shows time since the last completed batch run, turning
// yellow after a day and red after two.
func LastRepriceAge() *stat.PanelBuilder {
	return singleStat("Last Reprice", "Time since the last completed batch reprice run",
		`time() - dpr_reprice_last_run_timestamp`, TSHeight, StatWidth).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(86400, 172800)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
