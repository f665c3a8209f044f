package api

import (
	"errors"
	"net/http"

	"github.com/maisonlabs/boutique/internal/domain"
	"github.com/maisonlabs/boutique/internal/pkg/httputil"
	"github.com/maisonlabs/boutique/internal/service/category"
	"github.com/maisonlabs/boutique/internal/service/order"
	"github.com/maisonlabs/boutique/internal/service/product"
)

// writeServiceError maps service and domain errors onto HTTP status codes.
// Validation and state machine violations are client errors, missing
// aggregates are 404, everything else is an opaque 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		httputil.BadRequest(w, verr.Error())
		return
	}
	var serr *domain.InvalidStatusError
	if errors.As(err, &serr) {
		httputil.BadRequest(w, serr.Error())
		return
	}
	if errors.Is(err, category.ErrNotFound) ||
		errors.Is(err, product.ErrNotFound) ||
		errors.Is(err, order.ErrNotFound) {
		httputil.NotFound(w, err.Error())
		return
	}
	httputil.InternalError(w, err)
}
