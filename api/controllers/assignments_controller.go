package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/responses"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/validators"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/assignments"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/logger"
)

type assignCourierRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

// AssignCourier handles POST /api/v1/merchants/{merchantId}/orders/{orderId}/assignments.
func AssignCourier(svc assignments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, err := validators.ParsePathUUID(chi.URLParam(r, "merchantId"), "merchantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		orderID, err := validators.ParsePathUUID(chi.URLParam(r, "orderId"), "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := requireMerchantAccess(r, merchantID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req assignCourierRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		userID, err := validators.ParsePathUUID(req.UserID, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		assignment, err := svc.Assign(r.Context(), orderID, userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusCreated, assignment, "courier assigned")
	}
}
