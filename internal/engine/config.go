package engine

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// UpsertPricingConfig creates or partially updates the guardrail config of
// an item owned by orgID. The patch is merged over the stored config (or the
// defaults for a first write) and the merged result must validate before
// anything is written.
func (eng *Engine) UpsertPricingConfig(
	ctx context.Context,
	itemID string,
	orgID string,
	patch *domain.PricingConfigPatch,
) (*domain.PricingConfig, error) {
	if _, err := eng.ownedItem(ctx, itemID, orgID); err != nil {
		return nil, err
	}

	base := domain.DefaultPricingConfig(itemID)
	existing, err := eng.store.GetPricingConfig(ctx, itemID)
	switch {
	case err == nil:
		base = *existing
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("getting pricing config: %w", err)
	}

	merged := patch.Merge(base)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	cfg, err := eng.store.UpsertPricingConfig(ctx, itemID, patch)
	if err != nil {
		return nil, err
	}

	eng.log.Info("pricing config updated",
		"item_id", itemID,
		"org_id", orgID,
		"auto_pricing_enabled", cfg.AutoPricingEnabled,
	)

	return cfg, nil
}
