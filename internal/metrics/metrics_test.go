package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, RecommendationCacheTotal)
	assert.NotNil(t, SnapshotsComputedTotal)
	assert.NotNil(t, RecommendedPriceUSD)
	assert.NotNil(t, PriceAppliesTotal)
	assert.NotNil(t, GuardrailRejectionsTotal)
	assert.NotNil(t, AuditSinkFailuresTotal)
	assert.NotNil(t, RepriceOutcomesTotal)
	assert.NotNil(t, RepriceDuration)
	assert.NotNil(t, RepriceLastRunTimestamp)
	assert.NotNil(t, SchedulerNextRepriceTimestamp)
	assert.NotNil(t, SchedulerJobRunsTotal)
}

func TestMetricNamesUseNamespace(t *testing.T) {
	t.Parallel()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	var found int
	for _, f := range families {
		if f.GetName() == "dpr_snapshots_computed_total" || f.GetName() == "dpr_healthz_up" {
			found++
		}
	}
	assert.Equal(t, 2, found)
}

func TestGuardrailRejectionsTotal_LabelledByBound(t *testing.T) {
	t.Parallel()

	before := ptestutil.ToFloat64(GuardrailRejectionsTotal.WithLabelValues("test_bound"))
	GuardrailRejectionsTotal.WithLabelValues("test_bound").Inc()
	after := ptestutil.ToFloat64(GuardrailRejectionsTotal.WithLabelValues("test_bound"))
	assert.InDelta(t, before+1, after, 0.001)
}
