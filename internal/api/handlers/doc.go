// Package handlers implements the HTTP surface of dataset-pricer.
//
// Pricing, preview, reprice and job routes are Huma operations and appear
// in the generated OpenAPI document. The liveness and readiness probes are
// plain Echo routes so they stay outside the documented API.
//
// Pricing reads take org_id as a query parameter and writes take it in the
// body. Applying a price additionally requires the X-Actor-ID header.
package handlers

// HealthResponse is the body of the probe endpoints.
type HealthResponse struct {
	Status  string            `json:"status"            example:"ok"`
	Version string            `json:"version,omitempty" example:"v0.4.0"`
	Checks  map[string]string `json:"checks,omitempty"`
}
