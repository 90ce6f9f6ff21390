package pricer

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

const hashLen = 16

// canonicalInput is the price-relevant subset of Input. Field order is fixed
// by the struct so the encoding is stable.
type canonicalInput struct {
	Categories         []string `json:"categories"`
	QualityPercent     int      `json:"qualityPercent"`
	ComplexityTag      string   `json:"complexityTag"`
	CleaningCostUSD    float64  `json:"cleaningCostUsd"`
	Views30d           int      `json:"views30d"`
	Purchases30d       int      `json:"purchases30d"`
	Revenue30d         float64  `json:"revenue30d"`
	PeerMedianPriceUSD *float64 `json:"peerMedianPriceUsd"`
}

// InputsHash returns a 16-character hex digest of the fields that influence
// the price. Timestamps, the current price, and item identity are excluded.
func InputsHash(in *Input) string {
	cats := in.Categories
	if cats == nil {
		cats = []string{}
	}

	c := canonicalInput{
		Categories:         cats,
		QualityPercent:     in.QualityPercent,
		ComplexityTag:      string(in.ComplexityTag),
		CleaningCostUSD:    max(in.CleaningCostUSD, 0),
		Views30d:           in.Views30d,
		Purchases30d:       in.Purchases30d,
		Revenue30d:         in.Revenue30d,
		PeerMedianPriceUSD: in.PeerMedianPriceUSD,
	}

	// Marshal cannot fail: every field is a plain value.
	data, _ := json.Marshal(c)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:hashLen]
}
