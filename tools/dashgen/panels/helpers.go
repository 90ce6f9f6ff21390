// Package panels provides Grafana dashboard panel builders for
// dataset-pricer metrics.
package panels

import (
	"fmt"
	"math"

	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// Job is the Prometheus scrape job name of the server.
const Job = "dataset-pricer"

// Panel sizes on Grafana's 24-column grid.
const (
	StatWidth  = 6
	StatHeight = 4

	TSWidth  = 12
	TSHeight = 8
)

// DSRef points panels at the ${datasource} template variable.
func DSRef() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

// PromQuery builds a Prometheus target.
func PromQuery(expr, legendFormat, refID string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expr).
		LegendFormat(legendFormat).
		RefId(refID)
}

// refID returns the Grafana target letter for index i (A, B, C...).
func refID(i int) string {
	return string(rune('A' + i))
}

// QuantileQueries returns one histogram_quantile target per quantile over
// the given _bucket series, legended p50, p95 and so on.
func QuantileQueries(bucket, window string, quantiles ...float64) []*prometheus.DataqueryBuilder {
	out := make([]*prometheus.DataqueryBuilder, 0, len(quantiles))
	for i, q := range quantiles {
		expr := fmt.Sprintf(`histogram_quantile(%.2f, sum(rate(%s[%s])) by (le))`, q, bucket, window)
		out = append(out, PromQuery(expr, fmt.Sprintf("p%.0f", math.Round(q*100)), refID(i)))
	}
	return out
}

// timeSeries returns a line chart with the house defaults applied. Callers
// add targets and override whatever differs.
func timeSeries(title, description string, width int) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(width).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// singleStat returns a stat panel for one expression.
func singleStat(title, description, expr string, height, width int) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(height).
		Span(width).
		WithTarget(PromQuery(expr, "", "A")).
		ColorScheme(ColorSchemeThresholds())
}

// step switches to color at and above a value.
type step struct {
	at    float64
	color string
}

// thresholds builds absolute threshold steps on top of a base color.
func thresholds(base string, steps ...step) cog.Builder[dashboard.ThresholdsConfig] {
	out := []dashboard.Threshold{{Color: base}}
	for _, s := range steps {
		out = append(out, dashboard.Threshold{Value: cog.ToPtr(s.at), Color: s.color})
	}
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps(out)
}

// ThresholdsGreenOnly is a single green step.
func ThresholdsGreenOnly() cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds("green")
}

// ThresholdsRedGreen is red below greenAt and green from it.
func ThresholdsRedGreen(greenAt float64) cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds("red", step{greenAt, "green"})
}

// ThresholdsGreenYellowRed is green, then yellow from yellow, then red from red.
func ThresholdsGreenYellowRed(yellow, red float64) cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds("green", step{yellow, "yellow"}, step{red, "red"})
}

// ColorSchemeThresholds colors values by their threshold step.
func ColorSchemeThresholds() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().
		Mode(dashboard.FieldColorModeIdThresholds)
}

// ColorSchemePaletteClassic colors series from the classic palette.
func ColorSchemePaletteClassic() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().
		Mode(dashboard.FieldColorModeIdPaletteClassic)
}

// TableLegend shows the legend as a table under the chart with the given
// calculation columns.
func TableLegend(calcs ...string) *common.VizLegendOptionsBuilder {
	return common.NewVizLegendOptionsBuilder().
		DisplayMode(common.LegendDisplayModeTable).
		Placement(common.LegendPlacementBottom).
		Calcs(calcs)
}

// MultiTooltip shows every series in the tooltip, largest first.
func MultiTooltip() *common.VizTooltipOptionsBuilder {
	return common.NewVizTooltipOptionsBuilder().
		Mode(common.TooltipDisplayModeMulti).
		Sort(common.SortOrderDescending)
}
