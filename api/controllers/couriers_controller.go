package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/responses"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/validators"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/couriers"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/logger"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/pagination"
)

// ListCouriers handles GET /api/v1/merchants/{merchantId}/couriers.
func ListCouriers(svc couriers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, err := validators.ParsePathUUID(chi.URLParam(r, "merchantId"), "merchantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := requireMerchantAccess(r, merchantID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := pagination.FromRequest(r)
		list, err := svc.ListByMerchant(r.Context(), merchantID, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WritePage(w, list.Couriers, params.MetaFor(list.Total))
	}
}
