package handlers

import (
	"errors"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// errPricingDisabled is returned by every pricing route while the feature
// flag is off.
var errPricingDisabled = huma.Error404NotFound("dynamic pricing is not enabled")

// pricingError maps engine errors onto HTTP status codes.
func pricingError(err error) error {
	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &nf):
		return huma.Error404NotFound(nf.Error())
	case errors.Is(err, domain.ErrNotFound):
		return huma.Error404NotFound("not found")
	case domain.IsGuardrail(err):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, domain.ErrInvalidConfig):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, domain.ErrNoPricePlan), errors.Is(err, domain.ErrSnapshotApplied):
		return huma.Error409Conflict(err.Error())
	default:
		return internalError("pricing request", err)
	}
}

// internalError logs err and returns a 500 that names only the failed
// operation, keeping store details out of responses.
func internalError(op string, err error) error {
	slog.Error(op+" failed", "error", err)
	return huma.Error500InternalServerError(op + " failed")
}
