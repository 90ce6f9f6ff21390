// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/dataset-pricer/tools/dashgen/panels"
)

// BuildOverview constructs the Dataset Pricer Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Dataset Pricer Overview").
		Uid("dpr-overview").
		Tags([]string{"dpr", "dataset-pricer"}).
		Refresh("30s").
		Time("now-24h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.NextRepriceStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Recommendations.
	b.WithRow(dashboard.NewRowBuilder("Recommendations").
		WithPanel(panels.CacheHitRatio()).
		WithPanel(panels.SnapshotsRate()).
		WithPanel(panels.RecommendedPricePercentiles()))

	// Row 4: Price changes.
	b.WithRow(dashboard.NewRowBuilder("Price Changes").
		WithPanel(panels.AppliesByReason()).
		WithPanel(panels.GuardrailRejections()).
		WithPanel(panels.AuditSinkFailures()))

	// Row 5: Auto-reprice.
	b.WithRow(dashboard.NewRowBuilder("Auto-Reprice").
		WithPanel(panels.RepriceOutcomes()).
		WithPanel(panels.RepriceDuration()).
		WithPanel(panels.LastRepriceAge()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
