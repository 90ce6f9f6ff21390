package domain

import (
	"errors"
	"fmt"
)

// Guardrail bounds accepted for MaxWeeklyChangePct.
const (
	MinWeeklyChangePct = 1
	MaxWeeklyChangePct = 50
)

// Validate checks the guardrail values. Every violation is reported, joined
// and wrapped in ErrInvalidConfig.
func (c *PricingConfig) Validate() error {
	var errs []error

	if c.MaxWeeklyChangePct < MinWeeklyChangePct || c.MaxWeeklyChangePct > MaxWeeklyChangePct {
		errs = append(errs, fmt.Errorf(
			"max_weekly_change_pct must be between %d and %d (got %d)",
			MinWeeklyChangePct, MaxWeeklyChangePct, c.MaxWeeklyChangePct,
		))
	}
	if c.MinPriceUSD.IsNegative() {
		errs = append(errs, fmt.Errorf("min_price_usd must not be negative (got %s)", c.MinPriceUSD))
	}
	if !c.MaxPriceUSD.IsPositive() {
		errs = append(errs, fmt.Errorf("max_price_usd must be positive (got %s)", c.MaxPriceUSD))
	}
	if c.MinPriceUSD.GreaterThan(c.MaxPriceUSD) {
		errs = append(errs, fmt.Errorf(
			"min_price_usd (%s) must not exceed max_price_usd (%s)",
			c.MinPriceUSD, c.MaxPriceUSD,
		))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
