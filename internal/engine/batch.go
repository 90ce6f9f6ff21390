package engine

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/donaldgifford/dataset-pricer/internal/metrics"
	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// SystemActor is the actor recorded for applies made by the scheduler.
const SystemActor = "system"

// RunAutoPricingForAll recomputes and applies a fresh recommendation for
// every item with auto-pricing enabled. Items are processed one at a time;
// a failure (or panic) on one item becomes an error outcome and the run
// continues. The returned error is non-nil only when the run could not
// start or ctx was cancelled, in which case the outcomes gathered so far
// are still returned.
func (eng *Engine) RunAutoPricingForAll(ctx context.Context, actorID string) ([]domain.RepriceOutcome, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.RunAutoPricingForAll")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.RepriceDuration.Observe(time.Since(start).Seconds())
		metrics.RepriceLastRunTimestamp.Set(float64(eng.now().Unix()))
	}()

	if actorID == "" {
		actorID = SystemActor
	}

	ids, err := eng.store.ListAutoPricingItemIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing auto-pricing items: %w", err)
	}

	outcomes := make([]domain.RepriceOutcome, 0, len(ids))
	for _, id := range ids {
		if err := eng.limiter.Wait(ctx); err != nil {
			return outcomes, fmt.Errorf("reprice run interrupted: %w", err)
		}

		o := eng.repriceItem(ctx, actorID, id)
		metrics.RepriceOutcomesTotal.WithLabelValues(string(o.Status)).Inc()
		if o.Status == domain.OutcomeError {
			eng.log.Warn("auto-reprice failed", "item_id", id, "error", o.Detail)
		}
		outcomes = append(outcomes, o)
	}

	summary := domain.Summarize(outcomes)
	span.SetAttributes(
		attribute.Int("applied", summary.Applied),
		attribute.Int("skipped", summary.Skipped),
		attribute.Int("errors", summary.Errors),
	)
	eng.log.Info("auto-reprice complete",
		"items", len(outcomes),
		"applied", summary.Applied,
		"skipped", summary.Skipped,
		"errors", summary.Errors,
		"elapsed", time.Since(start),
	)

	return outcomes, nil
}

// repriceItem handles one item and converts any failure into an outcome.
func (eng *Engine) repriceItem(ctx context.Context, actorID, itemID string) (out domain.RepriceOutcome) {
	out = domain.RepriceOutcome{ItemID: itemID}

	defer func() {
		if r := recover(); r != nil {
			out.Status = domain.OutcomeError
			out.Detail = fmt.Sprintf("panic: %v", r)
		}
	}()

	item, err := eng.store.GetItem(ctx, itemID)
	if err != nil {
		out.Status = domain.OutcomeError
		out.Detail = err.Error()
		return out
	}

	if !item.Published() {
		out.Status = domain.OutcomeSkipped
		out.Detail = "not published"
		return out
	}

	snap, err := eng.ComputeAndSaveSnapshot(ctx, itemID)
	if err != nil {
		out.Status = domain.OutcomeError
		out.Detail = err.Error()
		return out
	}

	if _, err := eng.ApplyRecommendedPrice(ctx, &ApplyRequest{
		ActorID:    actorID,
		ItemID:     itemID,
		OrgID:      item.OrgID,
		SnapshotID: snap.ID,
		Reason:     domain.ReasonAutoReprice,
	}); err != nil {
		out.Status = domain.OutcomeError
		out.Detail = err.Error()
		return out
	}

	out.Status = domain.OutcomeApplied
	return out
}
