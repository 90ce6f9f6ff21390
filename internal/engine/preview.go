package engine

import (
	"github.com/donaldgifford/dataset-pricer/pkg/pricer"
)

// PreviewRecommendedPrice prices assessment signals for an item that does
// not exist yet. Nothing is read or persisted.
func (eng *Engine) PreviewRecommendedPrice(s *pricer.Signals) (*pricer.Output, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := pricer.Preview(s, eng.now())
	return &out, nil
}
