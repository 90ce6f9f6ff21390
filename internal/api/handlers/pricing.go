package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/donaldgifford/dataset-pricer/internal/engine"
	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// PricingService is the slice of the engine the pricing routes call.
type PricingService interface {
	GetRecommendationView(ctx context.Context, itemID, orgID string) (*engine.RecommendationView, error)
	ApplyRecommendedPrice(ctx context.Context, req *engine.ApplyRequest) (*domain.AppliedPrice, error)
	UpsertPricingConfig(
		ctx context.Context,
		itemID string,
		orgID string,
		patch *domain.PricingConfigPatch,
	) (*domain.PricingConfig, error)
	GetPriceHistory(
		ctx context.Context,
		itemID, orgID string,
		filter engine.HistoryFilter,
	) (*domain.PriceHistory, error)
}

// PricingHandler serves the per-item pricing panel.
type PricingHandler struct {
	svc     PricingService
	enabled bool
}

// NewPricingHandler creates a new PricingHandler. When enabled is false
// every route answers 404.
func NewPricingHandler(svc PricingService, enabled bool) *PricingHandler {
	return &PricingHandler{svc: svc, enabled: enabled}
}

// ItemInput identifies an item and the organization asking about it.
type ItemInput struct {
	ItemID string `path:"item_id" doc:"Item ID"`
	OrgID  string `query:"org_id" required:"true" minLength:"1" doc:"Organization that owns the item"`
}

// RecommendationBody is the pricing panel payload.
type RecommendationBody struct {
	Snapshot        *domain.PricingSnapshot `json:"snapshot"`
	Config          *domain.PricingConfig   `json:"config"`
	CurrentPriceUSD *decimal.Decimal        `json:"current_price_usd"`
}

// GetRecommendationOutput is the response for the pricing panel.
type GetRecommendationOutput struct {
	Body RecommendationBody
}

// GetRecommendation returns the cached (or freshly computed) recommendation.
func (h *PricingHandler) GetRecommendation(
	ctx context.Context,
	input *ItemInput,
) (*GetRecommendationOutput, error) {
	if !h.enabled {
		return nil, errPricingDisabled
	}

	view, err := h.svc.GetRecommendationView(ctx, input.ItemID, input.OrgID)
	if err != nil {
		return nil, pricingError(err)
	}

	return &GetRecommendationOutput{Body: RecommendationBody{
		Snapshot:        view.Snapshot,
		Config:          view.Config,
		CurrentPriceUSD: view.CurrentPriceUSD,
	}}, nil
}

// ApplyInput is the request for applying a snapshot's price.
type ApplyInput struct {
	ItemID  string `path:"item_id" doc:"Item ID"`
	ActorID string `header:"X-Actor-ID" required:"true" minLength:"1" doc:"User applying the price"`
	Body    struct {
		OrgID      string `json:"org_id"           minLength:"1" doc:"Organization that owns the item"`
		SnapshotID string `json:"snapshot_id"      minLength:"1" doc:"Snapshot whose recommended price is applied"`
		Reason     string `json:"reason,omitempty" doc:"Audit reason code (default manual_apply)"`
	}
}

// ApplyOutput is the response for a successful apply.
type ApplyOutput struct {
	Body *domain.AppliedPrice
}

// Apply sets the item's one-time price to the snapshot's recommendation.
func (h *PricingHandler) Apply(ctx context.Context, input *ApplyInput) (*ApplyOutput, error) {
	if !h.enabled {
		return nil, errPricingDisabled
	}

	res, err := h.svc.ApplyRecommendedPrice(ctx, &engine.ApplyRequest{
		ActorID:    input.ActorID,
		ItemID:     input.ItemID,
		OrgID:      input.Body.OrgID,
		SnapshotID: input.Body.SnapshotID,
		Reason:     input.Body.Reason,
	})
	if err != nil {
		return nil, pricingError(err)
	}

	return &ApplyOutput{Body: res}, nil
}

// UpsertConfigInput is a partial guardrail update. Omitted fields keep their
// stored value.
type UpsertConfigInput struct {
	ItemID string `path:"item_id" doc:"Item ID"`
	Body   struct {
		OrgID              string   `json:"org_id"                          minLength:"1"`
		AutoPricingEnabled *bool    `json:"auto_pricing_enabled,omitempty"`
		MinPriceUSD        *float64 `json:"min_price_usd,omitempty"         minimum:"0"`
		MaxPriceUSD        *float64 `json:"max_price_usd,omitempty"         exclusiveMinimum:"0"`
		MaxWeeklyChangePct *int     `json:"max_weekly_change_pct,omitempty" minimum:"1" maximum:"50"`
	}
}

// UpsertConfigOutput is the stored config after the update.
type UpsertConfigOutput struct {
	Body *domain.PricingConfig
}

// UpsertConfig creates or partially updates the item's guardrails.
func (h *PricingHandler) UpsertConfig(
	ctx context.Context,
	input *UpsertConfigInput,
) (*UpsertConfigOutput, error) {
	if !h.enabled {
		return nil, errPricingDisabled
	}

	patch := &domain.PricingConfigPatch{
		AutoPricingEnabled: input.Body.AutoPricingEnabled,
		MaxWeeklyChangePct: input.Body.MaxWeeklyChangePct,
	}
	if input.Body.MinPriceUSD != nil {
		d := decimal.NewFromFloat(*input.Body.MinPriceUSD)
		patch.MinPriceUSD = &d
	}
	if input.Body.MaxPriceUSD != nil {
		d := decimal.NewFromFloat(*input.Body.MaxPriceUSD)
		patch.MaxPriceUSD = &d
	}

	cfg, err := h.svc.UpsertPricingConfig(ctx, input.ItemID, input.Body.OrgID, patch)
	if err != nil {
		return nil, pricingError(err)
	}

	return &UpsertConfigOutput{Body: cfg}, nil
}

// HistoryInput identifies an item and optionally narrows its audit rows.
type HistoryInput struct {
	ItemID  string `path:"item_id" doc:"Item ID"`
	OrgID   string `query:"org_id" required:"true" minLength:"1" doc:"Organization that owns the item"`
	Reason  string `query:"reason" doc:"Only price changes with this reason code"`
	ActorID string `query:"actor_id" doc:"Only price changes made by this actor"`
	Since   string `query:"since" format:"date-time" doc:"Only price changes applied at or after this RFC 3339 time"`
}

// GetHistoryOutput is the recent pricing activity of an item.
type GetHistoryOutput struct {
	Body *domain.PriceHistory
}

// GetHistory returns the newest snapshots and applied price changes.
func (h *PricingHandler) GetHistory(ctx context.Context, input *HistoryInput) (*GetHistoryOutput, error) {
	if !h.enabled {
		return nil, errPricingDisabled
	}

	filter := engine.HistoryFilter{Reason: input.Reason, ActorID: input.ActorID}
	if input.Since != "" {
		since, err := time.Parse(time.RFC3339, input.Since)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("since must be an RFC 3339 time")
		}
		filter.Since = since
	}

	hist, err := h.svc.GetPriceHistory(ctx, input.ItemID, input.OrgID, filter)
	if err != nil {
		return nil, pricingError(err)
	}

	return &GetHistoryOutput{Body: hist}, nil
}

// RegisterPricingRoutes registers the per-item pricing endpoints.
func RegisterPricingRoutes(api huma.API, h *PricingHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-recommendation",
		Method:      http.MethodGet,
		Path:        "/api/v1/items/{item_id}/pricing",
		Summary:     "Get price recommendation",
		Description: "Returns the newest recommendation computed within the cache window, " +
			"computing a fresh one when none exists, with the item's guardrails and current price.",
		Tags:   []string{"pricing"},
		Errors: []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetRecommendation)

	huma.Register(api, huma.Operation{
		OperationID: "apply-recommendation",
		Method:      http.MethodPost,
		Path:        "/api/v1/items/{item_id}/pricing/apply",
		Summary:     "Apply a recommended price",
		Description: "Sets the item's one-time price to a snapshot's recommendation after " +
			"checking the seller's min/max and weekly change guardrails.",
		Tags: []string{"pricing"},
		Errors: []int{
			http.StatusNotFound,
			http.StatusConflict,
			http.StatusUnprocessableEntity,
			http.StatusInternalServerError,
		},
	}, h.Apply)

	huma.Register(api, huma.Operation{
		OperationID: "upsert-pricing-config",
		Method:      http.MethodPut,
		Path:        "/api/v1/items/{item_id}/pricing/config",
		Summary:     "Update pricing guardrails",
		Description: "Creates or partially updates the item's auto-pricing flag and guardrails.",
		Tags:        []string{"pricing"},
		Errors: []int{
			http.StatusNotFound,
			http.StatusUnprocessableEntity,
			http.StatusInternalServerError,
		},
	}, h.UpsertConfig)

	huma.Register(api, huma.Operation{
		OperationID: "get-price-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/items/{item_id}/pricing/history",
		Summary:     "Get price history",
		Description: "Returns the newest snapshots and applied price changes (newest first). " +
			"Price changes can be narrowed by reason, actor, and time.",
		Tags: []string{"pricing"},
		Errors: []int{
			http.StatusNotFound,
			http.StatusUnprocessableEntity,
			http.StatusInternalServerError,
		},
	}, h.GetHistory)
}
