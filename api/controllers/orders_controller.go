package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/responses"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/validators"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/orders"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/logger"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/pagination"
)

type createOrderRequest struct {
	Title            string          `json:"title" validate:"required"`
	Amount           decimal.Decimal `json:"amount" validate:"required"`
	CustomerName     string          `json:"customerName" validate:"required"`
	AddressText      string          `json:"addressText" validate:"required"`
	AddressLatitude  *float64        `json:"addressLatitude,omitempty"`
	AddressLongitude *float64        `json:"addressLongitude,omitempty"`
	AdditionalNotes  *string         `json:"additionalNotes,omitempty"`
	Status           string          `json:"status" validate:"required"`
}

// CreateOrder handles POST /api/v1/merchants/{merchantId}/orders.
func CreateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
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

		var req createOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Create(r.Context(), orders.CreateInput{
			MerchantID:       merchantID,
			Title:            req.Title,
			Amount:           req.Amount,
			CustomerName:     req.CustomerName,
			AddressText:      req.AddressText,
			AddressLatitude:  req.AddressLatitude,
			AddressLongitude: req.AddressLongitude,
			AdditionalNotes:  req.AdditionalNotes,
			StatusName:       req.Status,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusCreated, order, "order created")
	}
}

// ListMerchantOrders handles GET /api/v1/merchants/{merchantId}/orders.
func ListMerchantOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
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
		statusName := r.URL.Query().Get("status")

		list, err := svc.ListByMerchant(r.Context(), merchantID, statusName, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WritePage(w, list.Orders, params.MetaFor(list.Total))
	}
}

// GetOrder handles GET /api/v1/merchants/{merchantId}/orders/{orderId}.
func GetOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
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

		detail, err := svc.Get(r.Context(), merchantID, orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, detail)
	}
}

// ListCourierOrders handles GET /api/v1/couriers/{courierId}/orders.
func ListCourierOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courierID, err := validators.ParsePathUUID(chi.URLParam(r, "courierId"), "courierId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := requireSelfAccess(r, courierID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := pagination.FromRequest(r)
		statusName := r.URL.Query().Get("status")

		list, err := svc.ListByCourier(r.Context(), courierID, statusName, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WritePage(w, list.Orders, params.MetaFor(list.Total))
	}
}
