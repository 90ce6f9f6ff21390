package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// Recommendation is the pricing panel of one item.
type Recommendation struct {
	Snapshot        *domain.PricingSnapshot `json:"snapshot"`
	Config          *domain.PricingConfig   `json:"config"`
	CurrentPriceUSD *decimal.Decimal        `json:"current_price_usd"`
}

// ConfigUpdate is a partial guardrail update. Nil fields are left unchanged.
type ConfigUpdate struct {
	AutoPricingEnabled *bool    `json:"auto_pricing_enabled,omitempty"`
	MinPriceUSD        *float64 `json:"min_price_usd,omitempty"`
	MaxPriceUSD        *float64 `json:"max_price_usd,omitempty"`
	MaxWeeklyChangePct *int     `json:"max_weekly_change_pct,omitempty"`
}

// PreviewRequest describes an item that has not been created yet.
type PreviewRequest struct {
	Categories      []string `json:"categories,omitempty"`
	QualityPercent  int      `json:"quality_percent"`
	ComplexityTag   string   `json:"complexity_tag"`
	CleaningCostUSD float64  `json:"cleaning_cost_usd"`
}

// Preview is a suggested starting price.
type Preview struct {
	RecommendedPriceUSD int      `json:"recommended_price_usd"`
	ExplanationFactors  []string `json:"explanation_factors"`
}

// RepriceResult is the outcome of one batch repricing run.
type RepriceResult struct {
	Summary   domain.RepriceSummary   `json:"summary"`
	Results   []domain.RepriceOutcome `json:"results"`
	ElapsedMS int64                   `json:"elapsed_ms"`
	RanAt     time.Time               `json:"ran_at"`
}

func itemPath(itemID, suffix string) string {
	return "/api/v1/items/" + url.PathEscape(itemID) + "/pricing" + suffix
}

func orgQuery(orgID string) string {
	return "?" + url.Values{"org_id": {orgID}}.Encode()
}

// GetRecommendation returns the cached or freshly computed recommendation.
func (c *Client) GetRecommendation(ctx context.Context, itemID, orgID string) (*Recommendation, error) {
	var rec Recommendation
	if err := c.get(ctx, itemPath(itemID, "")+orgQuery(orgID), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ApplyRecommendation sets the item's price to the snapshot's recommendation.
// The client must have been created WithActor. An empty reason uses the
// server default.
func (c *Client) ApplyRecommendation(
	ctx context.Context,
	itemID string,
	orgID string,
	snapshotID string,
	reason string,
) (*domain.AppliedPrice, error) {
	if c.actorID == "" {
		return nil, errors.New("an actor ID is required to apply prices")
	}

	body := map[string]string{"org_id": orgID, "snapshot_id": snapshotID}
	if reason != "" {
		body["reason"] = reason
	}
	header := http.Header{}
	header.Set("X-Actor-ID", c.actorID)

	var res domain.AppliedPrice
	if err := c.post(ctx, itemPath(itemID, "/apply"), header, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateConfig creates or partially updates the item's guardrails.
func (c *Client) UpdateConfig(
	ctx context.Context,
	itemID string,
	orgID string,
	update *ConfigUpdate,
) (*domain.PricingConfig, error) {
	body := struct {
		OrgID string `json:"org_id"`
		*ConfigUpdate
	}{OrgID: orgID, ConfigUpdate: update}

	var cfg domain.PricingConfig
	if err := c.put(ctx, itemPath(itemID, "/config"), body, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// HistoryQuery narrows the price changes GetHistory returns. Zero values do
// not filter.
type HistoryQuery struct {
	Reason  string
	ActorID string
	Since   time.Time
}

// GetHistory returns the item's recent snapshots and applied price changes.
func (c *Client) GetHistory(ctx context.Context, itemID, orgID string, q HistoryQuery) (*domain.PriceHistory, error) {
	params := url.Values{"org_id": {orgID}}
	if q.Reason != "" {
		params.Set("reason", q.Reason)
	}
	if q.ActorID != "" {
		params.Set("actor_id", q.ActorID)
	}
	if !q.Since.IsZero() {
		params.Set("since", q.Since.UTC().Format(time.RFC3339))
	}

	var hist domain.PriceHistory
	if err := c.get(ctx, itemPath(itemID, "/history")+"?"+params.Encode(), &hist); err != nil {
		return nil, err
	}
	return &hist, nil
}

// Preview suggests a starting price for an item that does not exist yet.
func (c *Client) Preview(ctx context.Context, req *PreviewRequest) (*Preview, error) {
	var p Preview
	if err := c.post(ctx, "/api/v1/pricing/preview", nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Reprice triggers a batch repricing run. The client must have been created
// WithCronToken.
func (c *Client) Reprice(ctx context.Context) (*RepriceResult, error) {
	header := http.Header{}
	header.Set("X-Cron-Token", c.cronToken)

	var res RepriceResult
	if err := c.post(ctx, "/api/v1/reprice", header, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
