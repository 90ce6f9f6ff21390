package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/dataset-pricer/pkg/pricer"
	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// Previewer prices assessment signals without an item.
type Previewer interface {
	PreviewRecommendedPrice(s *pricer.Signals) (*pricer.Output, error)
}

// PreviewHandler serves the pre-listing price suggestion.
type PreviewHandler struct {
	previewer Previewer
	enabled   bool
}

// NewPreviewHandler creates a new PreviewHandler.
func NewPreviewHandler(p Previewer, enabled bool) *PreviewHandler {
	return &PreviewHandler{previewer: p, enabled: enabled}
}

// PreviewInput is the request body for a preview.
type PreviewInput struct {
	Body struct {
		Categories      []string `json:"categories,omitempty" maxItems:"10" doc:"Item categories; the first known one sets the base price"`
		QualityPercent  int      `json:"quality_percent"      minimum:"0" maximum:"100"`
		ComplexityTag   string   `json:"complexity_tag"       enum:"A,B,C,D"`
		CleaningCostUSD float64  `json:"cleaning_cost_usd"    minimum:"0"`
	}
}

// PreviewOutput is the suggested starting price.
type PreviewOutput struct {
	Body struct {
		RecommendedPriceUSD int      `json:"recommended_price_usd" example:"550"`
		ExplanationFactors  []string `json:"explanation_factors"`
	}
}

// Preview suggests a price for an item that has not been created yet.
func (h *PreviewHandler) Preview(_ context.Context, input *PreviewInput) (*PreviewOutput, error) {
	if !h.enabled {
		return nil, errPricingDisabled
	}

	out, err := h.previewer.PreviewRecommendedPrice(&pricer.Signals{
		Categories:      input.Body.Categories,
		QualityPercent:  input.Body.QualityPercent,
		ComplexityTag:   domain.ComplexityTag(input.Body.ComplexityTag),
		CleaningCostUSD: input.Body.CleaningCostUSD,
	})
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	resp := &PreviewOutput{}
	resp.Body.RecommendedPriceUSD = out.RecommendedPriceUSD
	resp.Body.ExplanationFactors = out.ExplanationFactors
	return resp, nil
}

// RegisterPreviewRoutes registers the preview endpoint.
func RegisterPreviewRoutes(api huma.API, h *PreviewHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "preview-price",
		Method:      http.MethodPost,
		Path:        "/api/v1/pricing/preview",
		Summary:     "Preview a price",
		Description: "Suggests a starting price from assessment signals alone. Nothing is persisted.",
		Tags:        []string{"pricing"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.Preview)
}
