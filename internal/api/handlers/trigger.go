package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/dataset-pricer/internal/engine"
	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// Repricer runs the batch auto-reprice.
type Repricer interface {
	RunAutoPricingForAll(ctx context.Context, actorID string) ([]domain.RepriceOutcome, error)
}

// RepriceHandler handles the cron-triggered batch reprice.
type RepriceHandler struct {
	repricer Repricer
	enabled  bool
	token    string
	now      func() time.Time
}

// NewRepriceHandler creates a new RepriceHandler. Requests must present
// token in X-Cron-Token; an empty token rejects every request.
func NewRepriceHandler(r Repricer, enabled bool, token string) *RepriceHandler {
	return &RepriceHandler{repricer: r, enabled: enabled, token: token, now: time.Now}
}

// RepriceInput carries the shared cron secret.
type RepriceInput struct {
	CronToken string `header:"X-Cron-Token" doc:"Shared secret configured as cron.token"`
}

// RepriceOutput is the response body for the reprice endpoint.
type RepriceOutput struct {
	Body struct {
		Summary   domain.RepriceSummary   `json:"summary"`
		Results   []domain.RepriceOutcome `json:"results"`
		ElapsedMS int64                   `json:"elapsed_ms" example:"1250"`
		RanAt     time.Time               `json:"ran_at"`
	}
}

// Reprice recomputes and applies prices for every auto-priced item.
func (h *RepriceHandler) Reprice(ctx context.Context, input *RepriceInput) (*RepriceOutput, error) {
	if !h.enabled {
		return nil, huma.Error503ServiceUnavailable("dynamic pricing is not enabled")
	}
	if h.token == "" || subtle.ConstantTimeCompare([]byte(input.CronToken), []byte(h.token)) != 1 {
		return nil, huma.Error401Unauthorized("invalid cron token")
	}

	ranAt := h.now()
	outcomes, err := h.repricer.RunAutoPricingForAll(ctx, engine.SystemActor)
	if err != nil && outcomes == nil {
		return nil, internalError("reprice", err)
	}
	if outcomes == nil {
		outcomes = []domain.RepriceOutcome{}
	}

	resp := &RepriceOutput{}
	resp.Body.Summary = domain.Summarize(outcomes)
	resp.Body.Results = outcomes
	resp.Body.ElapsedMS = h.now().Sub(ranAt).Milliseconds()
	resp.Body.RanAt = ranAt
	return resp, nil
}

// RegisterTriggerRoutes registers trigger endpoints with the Huma API.
func RegisterTriggerRoutes(api huma.API, h *RepriceHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-reprice",
		Method:      http.MethodPost,
		Path:        "/api/v1/reprice",
		Summary:     "Trigger batch auto-reprice",
		Description: "Recomputes and applies a fresh recommendation for every item with " +
			"auto-pricing enabled. Per-item failures are reported in results and never abort the run.",
		Tags: []string{"scheduler"},
		Errors: []int{
			http.StatusUnauthorized,
			http.StatusInternalServerError,
			http.StatusServiceUnavailable,
		},
	}, h.Reprice)
}
