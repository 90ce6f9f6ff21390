package pricer

import (
	"errors"
	"fmt"
	"time"

	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// Signals are the assessment inputs available before an item exists.
type Signals struct {
	Categories      []string             `json:"categories,omitempty"`
	QualityPercent  int                  `json:"quality_percent"`
	ComplexityTag   domain.ComplexityTag `json:"complexity_tag"`
	CleaningCostUSD float64              `json:"cleaning_cost_usd"`
}

// Validate rejects signals the formula cannot price.
func (s *Signals) Validate() error {
	var errs []error
	if s.QualityPercent < 0 || s.QualityPercent > 100 {
		errs = append(errs, fmt.Errorf("quality_percent must be between 0 and 100 (got %d)", s.QualityPercent))
	}
	if !s.ComplexityTag.Valid() {
		errs = append(errs, fmt.Errorf("complexity_tag must be one of A, B, C, D (got %q)", s.ComplexityTag))
	}
	if s.CleaningCostUSD < 0 {
		errs = append(errs, fmt.Errorf("cleaning_cost_usd must not be negative (got %g)", s.CleaningCostUSD))
	}
	return errors.Join(errs...)
}

// Preview prices a listing that has no history: no current price, no peer
// anchor, and zeroed demand counters. The data is treated as updated at now.
func Preview(s *Signals, now time.Time) Output {
	in := &Input{
		Categories:      s.Categories,
		LastUpdatedAt:   now,
		CreatedAt:       now,
		QualityPercent:  s.QualityPercent,
		ComplexityTag:   s.ComplexityTag,
		CleaningCostUSD: s.CleaningCostUSD,
	}
	return Compute(in, now)
}
