package pricer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

func TestPreview(t *testing.T) {
	t.Parallel()

	sig := &Signals{
		Categories:      []string{"Finance"},
		QualityPercent:  62,
		ComplexityTag:   domain.ComplexityB,
		CleaningCostUSD: 110,
	}

	out := Preview(sig, testNow)
	assert.Equal(t, 550, out.RecommendedPriceUSD)
	assert.Equal(t, []string{LabelVeryFresh}, out.ExplanationFactors)
	assert.False(t, out.Breakdown.PeerBlended)
	assert.False(t, out.Breakdown.Smoothed)
	assert.InDelta(t, 1.0, out.Breakdown.DemandMult, 1e-9)

	// Same result as the full formula with an empty history.
	full := Compute(&Input{
		Categories:      sig.Categories,
		LastUpdatedAt:   testNow.Add(-time.Hour),
		QualityPercent:  sig.QualityPercent,
		ComplexityTag:   sig.ComplexityTag,
		CleaningCostUSD: sig.CleaningCostUSD,
	}, testNow)
	assert.Equal(t, full.RecommendedPriceUSD, out.RecommendedPriceUSD)
	assert.Equal(t, full.InputsHash, out.InputsHash)
}

func TestSignals_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sig     Signals
		wantErr []string
	}{
		{
			name: "valid",
			sig:  Signals{QualityPercent: 50, ComplexityTag: domain.ComplexityC, CleaningCostUSD: 0},
		},
		{
			name:    "quality above 100",
			sig:     Signals{QualityPercent: 101, ComplexityTag: domain.ComplexityA},
			wantErr: []string{"quality_percent must be between 0 and 100 (got 101)"},
		},
		{
			name:    "unknown tag and negative cost",
			sig:     Signals{QualityPercent: 50, ComplexityTag: "E", CleaningCostUSD: -1},
			wantErr: []string{`complexity_tag must be one of A, B, C, D (got "E")`, "cleaning_cost_usd must not be negative"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.sig.Validate()
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
