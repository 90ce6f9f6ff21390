// Package pricer computes recommended one-time prices for catalog datasets.
// It performs no I/O: callers gather the signals and persist the result.
package pricer

import (
	"fmt"
	"math"
	"sort"
	"time"

	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// Formula constants.
const (
	qualityClampLow  = 30
	qualityClampHigh = 95
	qualityMultLow   = 0.70
	qualityMultSpan  = 0.60

	highQualityPercent = 80
	lowQualityPercent  = 50

	demandPctPerPurchase = 4
	demandCapPct         = 40
	strongDemandPct      = 12

	peerWeight        = 0.35
	peerFactorWeight  = 0.05
	smoothingBand     = 0.10
	roundingIncrement = 50

	maxFactors = 3
)

// Explanation labels.
const (
	LabelHighQuality    = "High data quality"
	LabelLowQuality     = "Low data quality, improvement opportunity"
	LabelHighComplexity = "High-complexity dataset"
	LabelLowComplexity  = "Simple, clean structure"
	LabelVeryFresh      = "Very fresh data (< 7 days)"
	LabelRecent         = "Recently updated data"
	LabelStale          = "Data not recently refreshed"
	LabelStrongDemand   = "High purchase demand"
	LabelSteadyDemand   = "Steady purchase demand"
	LabelPeers          = "Aligned with market peers"
	LabelStandard       = "Standard market pricing"
)

var complexityMultipliers = map[domain.ComplexityTag]float64{
	domain.ComplexityA: 0.85,
	domain.ComplexityB: 1.00,
	domain.ComplexityC: 1.20,
	domain.ComplexityD: 1.40,
}

// Input holds every signal the formula reads.
type Input struct {
	Categories    []string  `json:"categories"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	CreatedAt     time.Time `json:"createdAt"`

	QualityPercent  int                  `json:"qualityPercent"`
	ComplexityTag   domain.ComplexityTag `json:"complexityTag"`
	CleaningCostUSD float64              `json:"cleaningCostUsd"`

	Views30d     int     `json:"views30d"`
	Purchases30d int     `json:"purchases30d"`
	Revenue30d   float64 `json:"revenue30d"`

	// PeerMedianPriceUSD is nil unless enough comparable peers exist.
	PeerMedianPriceUSD *float64 `json:"peerMedianPriceUsd"`
	// CurrentPriceUSD is nil for listings that have never been priced.
	CurrentPriceUSD *float64 `json:"currentPriceUsd"`
}

// Breakdown records every intermediate value of one computation.
type Breakdown struct {
	Category       Category `json:"category"`
	BasePrice      float64  `json:"base_price"`
	QualityMult    float64  `json:"quality_mult"`
	ComplexityMult float64  `json:"complexity_mult"`
	FreshnessMult  float64  `json:"freshness_mult"`
	DemandMult     float64  `json:"demand_mult"`
	PeerBlended    bool     `json:"peer_blended"`
	Smoothed       bool     `json:"smoothed"`
	Unrounded      float64  `json:"unrounded"`
}

// Output is the result of one computation.
type Output struct {
	RecommendedPriceUSD int       `json:"recommendedPriceUsd"`
	ExplanationFactors  []string  `json:"explanationFactors"`
	ComputedAt          time.Time `json:"computedAt"`
	InputsHash          string    `json:"inputsHash"`
	Breakdown           Breakdown `json:"breakdown"`
}

type factor struct {
	label  string
	weight float64
}

// Compute runs the pricing pipeline. now is the reference time for the
// freshness bucket and becomes Output.ComputedAt.
//
// Compute panics if in.ComplexityTag is not one of the four known tiers.
func Compute(in *Input, now time.Time) Output {
	cat := LookupCategory(in.Categories)
	b := Breakdown{Category: cat}
	var factors []factor

	cleaning := max(in.CleaningCostUSD, 0)
	price := math.Max(cat.FloorUSD, cleaning*cat.CleaningMultiplier)
	b.BasePrice = price

	b.QualityMult = qualityMultiplier(in.QualityPercent)
	price *= b.QualityMult
	switch {
	case in.QualityPercent >= highQualityPercent:
		factors = append(factors, factor{LabelHighQuality, b.QualityMult - 1})
	case in.QualityPercent < lowQualityPercent:
		factors = append(factors, factor{LabelLowQuality, 1 - b.QualityMult})
	}

	mult, ok := complexityMultipliers[in.ComplexityTag]
	if !ok {
		panic(fmt.Sprintf("pricer: unknown complexity tag %q", in.ComplexityTag))
	}
	b.ComplexityMult = mult
	price *= mult
	switch in.ComplexityTag {
	case domain.ComplexityD:
		factors = append(factors, factor{LabelHighComplexity, mult - 1})
	case domain.ComplexityA:
		factors = append(factors, factor{LabelLowComplexity, 1 - mult})
	}

	var freshLabel string
	b.FreshnessMult, freshLabel = freshness(now.Sub(in.LastUpdatedAt))
	price *= b.FreshnessMult
	if freshLabel != "" {
		factors = append(factors, factor{freshLabel, math.Abs(b.FreshnessMult - 1)})
	}

	boostPct := min(max(in.Purchases30d, 0)*demandPctPerPurchase, demandCapPct)
	boost := float64(boostPct) / 100
	b.DemandMult = 1 + boost
	price *= b.DemandMult
	switch {
	case boostPct >= strongDemandPct:
		factors = append(factors, factor{LabelStrongDemand, boost})
	case boostPct > 0:
		factors = append(factors, factor{LabelSteadyDemand, boost})
	}

	if in.PeerMedianPriceUSD != nil {
		price = price*(1-peerWeight) + *in.PeerMedianPriceUSD*peerWeight
		b.PeerBlended = true
		factors = append(factors, factor{LabelPeers, peerFactorWeight})
	}

	if in.CurrentPriceUSD != nil && *in.CurrentPriceUSD > 0 {
		cur := *in.CurrentPriceUSD
		clamped := clamp(price, cur*(1-smoothingBand), cur*(1+smoothingBand))
		b.Smoothed = clamped != price
		price = clamped
	}

	price = clamp(price, cat.FloorUSD, cat.CeilingUSD)
	b.Unrounded = price

	return Output{
		RecommendedPriceUSD: roundToIncrement(price),
		ExplanationFactors:  topFactors(factors),
		ComputedAt:          now,
		InputsHash:          InputsHash(in),
		Breakdown:           b,
	}
}

// qualityMultiplier maps [30,95] linearly onto [0.70,1.30]; values outside
// the range are clamped first.
func qualityMultiplier(q int) float64 {
	qc := clamp(float64(q), qualityClampLow, qualityClampHigh)
	return lerp(qc, qualityClampLow, qualityClampHigh, qualityMultLow, qualityMultLow+qualityMultSpan)
}

// freshness maps data age onto a step multiplier. The 31-90 day bucket is
// neutral and carries no label.
func freshness(age time.Duration) (float64, string) {
	days := age.Hours() / 24
	switch {
	case days <= 7:
		return 1.15, LabelVeryFresh
	case days <= 30:
		return 1.08, LabelRecent
	case days <= 90:
		return 1.00, ""
	default:
		return 0.90, LabelStale
	}
}

func topFactors(factors []factor) []string {
	if len(factors) == 0 {
		return []string{LabelStandard}
	}

	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].weight > factors[j].weight
	})

	n := min(len(factors), maxFactors)
	labels := make([]string, 0, n)
	for _, f := range factors[:n] {
		labels = append(labels, f.label)
	}
	return labels
}

// roundToIncrement rounds half up to the nearest multiple of 50.
func roundToIncrement(price float64) int {
	return int(math.Floor(price/roundingIncrement+0.5)) * roundingIncrement
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// lerp linearly interpolates value from [inMin, inMax] to [outMin, outMax].
func lerp(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	t := (value - inMin) / (inMax - inMin)
	return outMin + t*(outMax-outMin)
}
