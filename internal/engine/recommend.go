package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/dataset-pricer/internal/metrics"
	"github.com/donaldgifford/dataset-pricer/pkg/pricer"
	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// RecommendationView is everything a seller sees on the pricing panel.
type RecommendationView struct {
	Snapshot        *domain.PricingSnapshot
	Config          *domain.PricingConfig
	CurrentPriceUSD *decimal.Decimal
}

// GetOrComputeRecommendation returns the newest snapshot computed within
// maxAge, or computes and persists a fresh one. A non-positive maxAge uses
// the engine default. Repeated calls inside the window return the same
// snapshot and write nothing.
func (eng *Engine) GetOrComputeRecommendation(
	ctx context.Context,
	itemID string,
	maxAge time.Duration,
) (snap *domain.PricingSnapshot, err error) {
	ctx, span := eng.tracer.Start(ctx, "engine.GetOrComputeRecommendation",
		trace.WithAttributes(attribute.String("item_id", itemID)))
	defer func() { endSpan(span, err) }()

	if maxAge <= 0 {
		maxAge = eng.cacheMaxAge
	}

	snap, err = eng.store.GetLatestSnapshot(ctx, itemID, eng.now().Add(-maxAge))
	if err == nil {
		metrics.RecommendationCacheTotal.WithLabelValues("hit").Inc()
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return snap, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("looking up cached snapshot: %w", err)
	}

	metrics.RecommendationCacheTotal.WithLabelValues("miss").Inc()
	return eng.ComputeAndSaveSnapshot(ctx, itemID)
}

// ComputeAndSaveSnapshot always gathers fresh inputs, runs the formula, and
// persists the result. Returns domain.ErrNotFound if the item does not exist.
func (eng *Engine) ComputeAndSaveSnapshot(
	ctx context.Context,
	itemID string,
) (snap *domain.PricingSnapshot, err error) {
	ctx, span := eng.tracer.Start(ctx, "engine.ComputeAndSaveSnapshot",
		trace.WithAttributes(attribute.String("item_id", itemID)))
	defer func() { endSpan(span, err) }()

	item, err := eng.store.GetItem(ctx, itemID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("item")
	}
	if err != nil {
		return nil, err
	}

	in, err := eng.gatherInputs(ctx, item)
	if err != nil {
		return nil, err
	}

	out := pricer.Compute(in, eng.now())

	snap, err = buildSnapshot(item.ID, in, &out)
	if err != nil {
		return nil, err
	}

	if err := eng.store.InsertSnapshot(ctx, snap); err != nil {
		return nil, err
	}

	metrics.SnapshotsComputedTotal.Inc()
	metrics.RecommendedPriceUSD.Observe(float64(out.RecommendedPriceUSD))

	eng.log.Debug("snapshot computed",
		"item_id", item.ID,
		"snapshot_id", snap.ID,
		"recommended_price_usd", out.RecommendedPriceUSD,
		"inputs_hash", out.InputsHash,
	)

	return snap, nil
}

// GetRecommendationView returns the cached recommendation for an item owned
// by orgID, together with its config and current price when present.
func (eng *Engine) GetRecommendationView(
	ctx context.Context,
	itemID string,
	orgID string,
) (*RecommendationView, error) {
	if _, err := eng.ownedItem(ctx, itemID, orgID); err != nil {
		return nil, err
	}

	snap, err := eng.GetOrComputeRecommendation(ctx, itemID, 0)
	if err != nil {
		return nil, err
	}

	view := &RecommendationView{Snapshot: snap}

	cfg, err := eng.store.GetPricingConfig(ctx, itemID)
	switch {
	case err == nil:
		view.Config = cfg
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("getting pricing config: %w", err)
	}

	plan, err := eng.store.GetPricePlan(ctx, itemID, domain.PlanOneTime)
	switch {
	case err == nil:
		view.CurrentPriceUSD = &plan.PriceUSD
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("getting price plan: %w", err)
	}

	return view, nil
}

// gatherInputs assembles the formula input for an item from the catalog.
func (eng *Engine) gatherInputs(ctx context.Context, item *domain.Item) (*pricer.Input, error) {
	in := &pricer.Input{
		Categories:      item.Categories,
		LastUpdatedAt:   item.LastUpdatedAt,
		CreatedAt:       item.CreatedAt,
		QualityPercent:  eng.defaults.QualityPercent,
		ComplexityTag:   eng.defaults.ComplexityTag,
		CleaningCostUSD: eng.defaults.CleaningCostUSD.InexactFloat64(),
	}
	if item.QualityPercent != nil {
		in.QualityPercent = *item.QualityPercent
	}
	if item.ComplexityTag != nil && item.ComplexityTag.Valid() {
		in.ComplexityTag = *item.ComplexityTag
	}
	if item.CleaningCostUSD != nil {
		in.CleaningCostUSD = item.CleaningCostUSD.InexactFloat64()
	}

	stats, err := eng.store.GetPurchaseStats(ctx, item.ID, eng.now().Add(-demandWindow))
	if err != nil {
		return nil, err
	}
	in.Purchases30d = stats.Count
	in.Revenue30d = stats.RevenueUSD.InexactFloat64()

	plan, err := eng.store.GetPricePlan(ctx, item.ID, domain.PlanOneTime)
	switch {
	case err == nil:
		p := plan.PriceUSD.InexactFloat64()
		in.CurrentPriceUSD = &p
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("getting price plan: %w", err)
	}

	if len(item.Categories) > 0 {
		peers, err := eng.store.ListPeerPrices(ctx, item.Categories[0], item.ID)
		if err != nil {
			return nil, err
		}
		if len(peers) >= eng.minPeers {
			m := median(peers).InexactFloat64()
			in.PeerMedianPriceUSD = &m
		}
	}

	return in, nil
}

// median returns the middle value of prices, or the mean of the two middle
// values for an even count. prices must not be empty.
func median(prices []decimal.Decimal) decimal.Decimal {
	sorted := slices.Clone(prices)
	slices.SortFunc(sorted, func(a, b decimal.Decimal) int { return a.Cmp(b) })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2))
}

func buildSnapshot(itemID string, in *pricer.Input, out *pricer.Output) (*domain.PricingSnapshot, error) {
	inputs, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshaling inputs: %w", err)
	}

	breakdown, err := json.Marshal(out.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("marshaling breakdown: %w", err)
	}

	explanation, err := json.Marshal(domain.SnapshotExplanation{
		Factors:   out.ExplanationFactors,
		Hash:      out.InputsHash,
		Breakdown: breakdown,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling explanation: %w", err)
	}

	return &domain.PricingSnapshot{
		ItemID:              itemID,
		RecommendedPriceUSD: decimal.NewFromInt(int64(out.RecommendedPriceUSD)),
		Inputs:              inputs,
		Explanation:         explanation,
		InputsHash:          out.InputsHash,
		ComputedAt:          out.ComputedAt,
	}, nil
}

// ownedItem loads an item and hides items of other organizations behind
// the same not-found error as a missing item.
func (eng *Engine) ownedItem(ctx context.Context, itemID, orgID string) (*domain.Item, error) {
	item, err := eng.store.GetItem(ctx, itemID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("item")
	}
	if err != nil {
		return nil, err
	}
	if item.OrgID != orgID {
		return nil, domain.NotFound("item")
	}
	return item, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
