package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

var httpBucket = fmt.Sprintf(`dpr_http_request_duration_seconds_bucket{job=%q}`, Job)

// RequestRate charts HTTP requests per second.
func RequestRate() *timeseries.PanelBuilder {
	return timeSeries("Request Rate", "HTTP requests per second, probes and scrapes excluded", TSWidth).
		WithTarget(PromQuery(`dpr:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max"))
}

// LatencyPercentiles charts p50, p95 and p99 request latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	p := timeSeries("Latency Percentiles", "HTTP request duration percentiles", TSWidth).
		Unit("s").
		Legend(TableLegend("mean", "max"))
	for _, q := range QuantileQueries(httpBucket, "5m", 0.50, 0.95, 0.99) {
		p = p.WithTarget(q)
	}
	return p
}

// ErrorRate charts 5xx responses as a percentage of all requests.
func ErrorRate() *timeseries.PanelBuilder {
	return timeSeries("Error Rate %", "HTTP 5xx responses as a percentage of all requests", TSWidth).
		WithTarget(PromQuery(`dpr:http_errors:rate5m / dpr:http_requests:rate5m * 100`, "error %", "A")).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}
