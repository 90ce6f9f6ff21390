package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors shared by the store, engine, and API layers.
var (
	// ErrNotFound is returned when an entity does not exist or is not
	// visible to the caller's organization.
	ErrNotFound = errors.New("not found")

	// ErrNoPricePlan is returned when an item has no one-time price plan to
	// apply a recommendation to.
	ErrNoPricePlan = errors.New("item has no one-time price plan")

	// ErrSnapshotApplied is returned when a snapshot already carries an
	// applied price.
	ErrSnapshotApplied = errors.New("snapshot has already been applied")

	// ErrInvalidConfig is returned when a pricing config fails validation.
	ErrInvalidConfig = errors.New("invalid pricing config")
)

// NotFoundError names the kind of entity that was missing. It matches
// ErrNotFound with errors.Is.
type NotFoundError struct {
	Entity string
}

// NotFound returns a NotFoundError for entity.
func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// GuardrailBound names the guardrail a price violated.
type GuardrailBound string

// Guardrail bound constants.
const (
	BoundMin    GuardrailBound = "min_price"
	BoundMax    GuardrailBound = "max_price"
	BoundWeekly GuardrailBound = "max_weekly_change"
)

// GuardrailError reports a recommended price rejected by a seller guardrail.
type GuardrailError struct {
	Bound GuardrailBound
	Price decimal.Decimal
	// Limit is the configured min/max price, or the current price for the
	// weekly bound.
	Limit decimal.Decimal
	// Pct is the configured weekly change limit. Zero for the price bounds.
	Pct int
}

func (e *GuardrailError) Error() string {
	switch e.Bound {
	case BoundMin:
		return fmt.Sprintf("recommended price $%s is below seller minimum $%s",
			e.Price.StringFixed(2), e.Limit.StringFixed(2))
	case BoundMax:
		return fmt.Sprintf("recommended price $%s exceeds seller maximum $%s",
			e.Price.StringFixed(2), e.Limit.StringFixed(2))
	default:
		return fmt.Sprintf("price change exceeds %d%% weekly limit (current: $%s)",
			e.Pct, e.Limit.StringFixed(2))
	}
}

// IsGuardrail reports whether err is (or wraps) a GuardrailError.
func IsGuardrail(err error) bool {
	var ge *GuardrailError
	return errors.As(err, &ge)
}
