package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// upStat shows a 0/1 probe gauge as a red or green tile.
func upStat(title, description, metric string) *stat.PanelBuilder {
	return singleStat(title, description, metric, StatHeight, StatWidth).
		Thresholds(ThresholdsRedGreen(1)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// HealthzStat shows the liveness probe result.
func HealthzStat() *stat.PanelBuilder {
	return upStat("Healthz", "Liveness probe (1 = ok, 0 = failing)", `dpr_healthz_up`)
}

// ReadyzStat shows the readiness probe result, which follows database
// reachability.
func ReadyzStat() *stat.PanelBuilder {
	return upStat("Readyz", "Readiness probe (1 = database reachable, 0 = not ready)", `dpr_readyz_up`)
}

// NextRepriceStat counts down to the next scheduled auto-reprice run. It
// stays empty while pricing is disabled since the scheduler does not start.
func NextRepriceStat() *stat.PanelBuilder {
	return singleStat("Next Reprice", "Time until the next scheduled auto-reprice run",
		fmt.Sprintf(`dpr_scheduler_next_reprice_timestamp{job=%q} - time()`, Job), StatHeight, StatWidth).
		Unit("s").
		Thresholds(ThresholdsRedGreen(0)).
		GraphMode(common.BigValueGraphModeNone)
}

// UptimeStat shows time since process start.
func UptimeStat() *stat.PanelBuilder {
	return singleStat("Uptime", "Time since process start",
		fmt.Sprintf(`time() - process_start_time_seconds{job=%q}`, Job), StatHeight, StatWidth).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		GraphMode(common.BigValueGraphModeNone)
}
