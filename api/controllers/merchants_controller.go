package controllers

import (
	"net/http"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/responses"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/validators"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/merchants"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/logger"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/pagination"
)

type createMerchantRequest struct {
	Name         string `json:"name" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
	ContactPhone string `json:"contactPhone" validate:"required"`
	Address      string `json:"address" validate:"required"`
}

// CreateMerchant handles POST /api/v1/merchants.
func CreateMerchant(svc merchants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMerchantRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		merchant, err := svc.Create(r.Context(), merchants.CreateInput{
			Name:         req.Name,
			ContactEmail: req.ContactEmail,
			ContactPhone: req.ContactPhone,
			Address:      req.Address,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusCreated, merchant, "merchant created")
	}
}

// ListMerchants handles GET /api/v1/merchants.
func ListMerchants(svc merchants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := pagination.FromRequest(r)

		list, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WritePage(w, list.Merchants, params.MetaFor(list.Total))
	}
}
