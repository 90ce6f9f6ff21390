package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dataset-pricer/internal/api/handlers"
	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// fakeRepricer is a test double for Repricer.
type fakeRepricer struct {
	outcomes []domain.RepriceOutcome
	err      error
	called   bool
	actor    string
}

func (f *fakeRepricer) RunAutoPricingForAll(_ context.Context, actorID string) ([]domain.RepriceOutcome, error) {
	f.called = true
	f.actor = actorID
	return f.outcomes, f.err
}

func TestReprice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		enabled    bool
		token      string
		header     string
		repricer   *fakeRepricer
		wantStatus int
		wantCalled bool
	}{
		{
			name:    "valid token runs batch",
			enabled: true,
			token:   "s3cret",
			header:  "X-Cron-Token: s3cret",
			repricer: &fakeRepricer{outcomes: []domain.RepriceOutcome{
				{ItemID: "item-a", Status: domain.OutcomeApplied},
				{ItemID: "item-b", Status: domain.OutcomeSkipped, Detail: "not published"},
				{ItemID: "item-c", Status: domain.OutcomeError, Detail: "boom"},
			}},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "wrong token",
			enabled:    true,
			token:      "s3cret",
			header:     "X-Cron-Token: guess",
			repricer:   &fakeRepricer{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing token",
			enabled:    true,
			token:      "s3cret",
			repricer:   &fakeRepricer{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unconfigured token rejects everything",
			enabled:    true,
			token:      "",
			header:     "X-Cron-Token: ",
			repricer:   &fakeRepricer{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "pricing disabled",
			enabled:    false,
			token:      "s3cret",
			header:     "X-Cron-Token: s3cret",
			repricer:   &fakeRepricer{},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "batch could not start",
			enabled:    true,
			token:      "s3cret",
			header:     "X-Cron-Token: s3cret",
			repricer:   &fakeRepricer{err: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterTriggerRoutes(api, handlers.NewRepriceHandler(tt.repricer, tt.enabled, tt.token))

			args := []any{}
			if tt.header != "" {
				args = append(args, tt.header)
			}
			resp := api.Post("/api/v1/reprice", args...)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Equal(t, tt.wantCalled, tt.repricer.called)
		})
	}
}

func TestReprice_ResponseBody(t *testing.T) {
	t.Parallel()

	r := &fakeRepricer{outcomes: []domain.RepriceOutcome{
		{ItemID: "item-a", Status: domain.OutcomeApplied},
		{ItemID: "item-b", Status: domain.OutcomeSkipped, Detail: "not published"},
		{ItemID: "item-c", Status: domain.OutcomeError, Detail: "boom"},
	}}
	_, api := humatest.New(t)
	handlers.RegisterTriggerRoutes(api, handlers.NewRepriceHandler(r, true, "s3cret"))

	resp := api.Post("/api/v1/reprice", "X-Cron-Token: s3cret")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Summary   domain.RepriceSummary   `json:"summary"`
		Results   []domain.RepriceOutcome `json:"results"`
		ElapsedMS int64                   `json:"elapsed_ms"`
		RanAt     string                  `json:"ran_at"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	assert.Equal(t, domain.RepriceSummary{Applied: 1, Skipped: 1, Errors: 1}, body.Summary)
	assert.Len(t, body.Results, 3)
	assert.Equal(t, "not published", body.Results[1].Detail)
	assert.GreaterOrEqual(t, body.ElapsedMS, int64(0))
	assert.NotEmpty(t, body.RanAt)
	assert.Equal(t, "system", r.actor)
}

func TestReprice_EmptyRunReturnsEmptyResults(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterTriggerRoutes(api, handlers.NewRepriceHandler(&fakeRepricer{}, true, "s3cret"))

	resp := api.Post("/api/v1/reprice", "X-Cron-Token: s3cret")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"results":[]`)
}
