package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dataset-pricer/internal/api/handlers"
	"github.com/donaldgifford/dataset-pricer/pkg/pricer"
)

type fakePreviewer struct {
	out *pricer.Output
	err error
	got *pricer.Signals
}

func (f *fakePreviewer) PreviewRecommendedPrice(s *pricer.Signals) (*pricer.Output, error) {
	f.got = s
	return f.out, f.err
}

func TestPreview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		out        *pricer.Output
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid signals",
			body: map[string]any{
				"categories":        []string{"Finance"},
				"quality_percent":   62,
				"complexity_tag":    "B",
				"cleaning_cost_usd": 110,
			},
			out: &pricer.Output{
				RecommendedPriceUSD: 550,
				ExplanationFactors:  []string{"Very fresh data"},
			},
			wantStatus: http.StatusOK,
			wantBody:   `"recommended_price_usd":550`,
		},
		{
			name:       "quality above 100",
			body:       map[string]any{"quality_percent": 101, "complexity_tag": "B", "cleaning_cost_usd": 0},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown complexity tag",
			body:       map[string]any{"quality_percent": 50, "complexity_tag": "E", "cleaning_cost_usd": 0},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "negative cleaning cost",
			body:       map[string]any{"quality_percent": 50, "complexity_tag": "A", "cleaning_cost_usd": -5},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "engine rejection surfaces as 422",
			body:       map[string]any{"quality_percent": 50, "complexity_tag": "A", "cleaning_cost_usd": 0},
			err:        errors.New("complexity_tag must be one of A, B, C, D"),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "complexity_tag must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &fakePreviewer{out: tt.out, err: tt.err}
			_, api := humatest.New(t)
			handlers.RegisterPreviewRoutes(api, handlers.NewPreviewHandler(p, true))

			resp := api.Post("/api/v1/pricing/preview", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestPreview_PassesSignals(t *testing.T) {
	t.Parallel()

	p := &fakePreviewer{out: &pricer.Output{RecommendedPriceUSD: 500}}
	_, api := humatest.New(t)
	handlers.RegisterPreviewRoutes(api, handlers.NewPreviewHandler(p, true))

	resp := api.Post("/api/v1/pricing/preview", map[string]any{
		"categories":        []string{"Marketing"},
		"quality_percent":   80,
		"complexity_tag":    "C",
		"cleaning_cost_usd": 25.5,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	require.NotNil(t, p.got)
	assert.Equal(t, []string{"Marketing"}, p.got.Categories)
	assert.Equal(t, 80, p.got.QualityPercent)
	assert.Equal(t, "C", string(p.got.ComplexityTag))
	assert.InDelta(t, 25.5, p.got.CleaningCostUSD, 1e-9)
}

func TestPreview_Disabled(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterPreviewRoutes(api, handlers.NewPreviewHandler(&fakePreviewer{}, false))

	resp := api.Post("/api/v1/pricing/preview", map[string]any{
		"quality_percent": 50, "complexity_tag": "A", "cleaning_cost_usd": 0,
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
