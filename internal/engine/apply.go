package engine

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/dataset-pricer/internal/auditlog"
	"github.com/donaldgifford/dataset-pricer/internal/metrics"
	"github.com/donaldgifford/dataset-pricer/internal/store"
	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

const auditTimeout = 5 * time.Second

// ApplyRequest identifies a snapshot to apply and who is applying it.
type ApplyRequest struct {
	ActorID    string
	ItemID     string
	OrgID      string
	SnapshotID string
	// Reason defaults to domain.ReasonManualApply.
	Reason string
}

// ApplyRecommendedPrice sets an item's one-time price to a snapshot's
// recommendation. Preconditions are checked in order: ownership, price
// plan, snapshot. Seller guardrails are then evaluated against the locked
// current price inside the store's unit of work, so a racing apply cannot
// slip past them. The audit-log event is sent after commit.
func (eng *Engine) ApplyRecommendedPrice(
	ctx context.Context,
	req *ApplyRequest,
) (res *domain.AppliedPrice, err error) {
	ctx, span := eng.tracer.Start(ctx, "engine.ApplyRecommendedPrice",
		trace.WithAttributes(
			attribute.String("item_id", req.ItemID),
			attribute.String("snapshot_id", req.SnapshotID),
		))
	defer func() { endSpan(span, err) }()

	reason := req.Reason
	if reason == "" {
		reason = domain.ReasonManualApply
	}

	if _, err := eng.ownedItem(ctx, req.ItemID, req.OrgID); err != nil {
		return nil, err
	}

	if _, err := eng.store.GetPricePlan(ctx, req.ItemID, domain.PlanOneTime); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoPricePlan
		}
		return nil, err
	}

	snap, err := eng.store.GetSnapshot(ctx, req.SnapshotID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("snapshot")
	}
	if err != nil {
		return nil, err
	}
	if snap.ItemID != req.ItemID {
		return nil, domain.NotFound("snapshot")
	}
	if snap.Applied() {
		return nil, domain.ErrSnapshotApplied
	}

	now := eng.now()
	res, err = eng.store.ApplyPrice(ctx, &store.ApplyRequest{
		ItemID:      req.ItemID,
		SnapshotID:  snap.ID,
		ActorID:     req.ActorID,
		Reason:      reason,
		NewPriceUSD: snap.RecommendedPriceUSD,
		AppliedAt:   now,
	}, checkGuardrails(snap.RecommendedPriceUSD))
	if err != nil {
		var ge *domain.GuardrailError
		if errors.As(err, &ge) {
			metrics.GuardrailRejectionsTotal.WithLabelValues(string(ge.Bound)).Inc()
		}
		return nil, err
	}

	metrics.PriceAppliesTotal.WithLabelValues(reason).Inc()
	eng.log.Info("price applied",
		"item_id", req.ItemID,
		"snapshot_id", snap.ID,
		"actor_id", req.ActorID,
		"reason", reason,
		"old_price_usd", res.OldPriceUSD.StringFixed(2),
		"new_price_usd", res.NewPriceUSD.StringFixed(2),
	)

	eng.recordAudit(ctx, &auditlog.Event{
		Type:        auditlog.EventPriceChanged,
		ItemID:      req.ItemID,
		OrgID:       req.OrgID,
		ActorID:     req.ActorID,
		SnapshotID:  snap.ID,
		OldPriceUSD: res.OldPriceUSD,
		NewPriceUSD: res.NewPriceUSD,
		Reason:      reason,
		OccurredAt:  now,
	})

	return res, nil
}

// checkGuardrails returns the in-transaction check for newPrice. Items
// without a config are unrestricted. The weekly bound only applies when the
// current price is positive.
func checkGuardrails(newPrice decimal.Decimal) store.GuardFunc {
	return func(current decimal.Decimal, cfg *domain.PricingConfig) error {
		if cfg == nil {
			return nil
		}

		if newPrice.LessThan(cfg.MinPriceUSD) {
			return &domain.GuardrailError{Bound: domain.BoundMin, Price: newPrice, Limit: cfg.MinPriceUSD}
		}
		if newPrice.GreaterThan(cfg.MaxPriceUSD) {
			return &domain.GuardrailError{Bound: domain.BoundMax, Price: newPrice, Limit: cfg.MaxPriceUSD}
		}

		if current.IsPositive() {
			changePct := newPrice.Sub(current).Abs().Div(current).Mul(decimal.NewFromInt(100))
			if changePct.GreaterThan(decimal.NewFromInt(int64(cfg.MaxWeeklyChangePct))) {
				return &domain.GuardrailError{
					Bound: domain.BoundWeekly,
					Price: newPrice,
					Limit: current,
					Pct:   cfg.MaxWeeklyChangePct,
				}
			}
		}

		return nil
	}
}

// recordAudit sends an event to the audit sink. Failures are logged and
// counted, never returned.
func (eng *Engine) recordAudit(ctx context.Context, ev *auditlog.Event) {
	if eng.audit == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()

	if err := eng.audit.Record(ctx, ev); err != nil {
		metrics.AuditSinkFailuresTotal.Inc()
		eng.log.Warn("audit event not recorded",
			"item_id", ev.ItemID,
			"snapshot_id", ev.SnapshotID,
			"error", err,
		)
	}
}
