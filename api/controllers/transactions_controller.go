package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/responses"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/validators"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/transactions"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/logger"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/pagination"
)

type createTransactionRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,oneof=Cash Card"`
	CardNumber    *string         `json:"cardNumber,omitempty"`
	Status        string          `json:"status" validate:"required"`
}

type updateTransactionRequest struct {
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	PaymentMethod *string          `json:"paymentMethod,omitempty" validate:"omitempty,oneof=Cash Card"`
	CardNumber    *string          `json:"cardNumber,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

func parseTransactionScope(r *http.Request, logg *logger.Logger, w http.ResponseWriter) (merchantID, orderID uuid.UUID, ok bool) {
	m, err := validators.ParsePathUUID(chi.URLParam(r, "merchantId"), "merchantId")
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return merchantID, orderID, false
	}
	o, err := validators.ParsePathUUID(chi.URLParam(r, "orderId"), "orderId")
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return merchantID, orderID, false
	}
	if err := requireMerchantAccess(r, m); err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return merchantID, orderID, false
	}
	return m, o, true
}

// CreateTransaction handles POST .../orders/{orderId}/transactions.
func CreateTransaction(svc transactions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, orderID, ok := parseTransactionScope(r, logg, w)
		if !ok {
			return
		}

		var req createTransactionRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		transaction, err := svc.Create(r.Context(), transactions.CreateInput{
			MerchantID:    merchantID,
			OrderID:       orderID,
			Amount:        req.Amount,
			PaymentMethod: req.PaymentMethod,
			CardNumber:    req.CardNumber,
			StatusName:    req.Status,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusCreated, transaction, "transaction recorded")
	}
}

// UpdateTransaction handles PUT .../transactions/{transactionId}.
func UpdateTransaction(svc transactions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, orderID, ok := parseTransactionScope(r, logg, w)
		if !ok {
			return
		}
		transactionID, err := validators.ParsePathUUID(chi.URLParam(r, "transactionId"), "transactionId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updateTransactionRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Update(r.Context(), transactions.UpdateInput{
			TransactionID: transactionID,
			MerchantID:    merchantID,
			OrderID:       orderID,
			Amount:        req.Amount,
			PaymentMethod: req.PaymentMethod,
			CardNumber:    req.CardNumber,
			Status:        req.Status,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// GetTransaction handles GET .../transactions/{transactionId}.
func GetTransaction(svc transactions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, orderID, ok := parseTransactionScope(r, logg, w)
		if !ok {
			return
		}
		transactionID, err := validators.ParsePathUUID(chi.URLParam(r, "transactionId"), "transactionId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.Get(r.Context(), merchantID, orderID, transactionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, detail)
	}
}

// ListTransactions handles GET .../orders/{orderId}/transactions.
func ListTransactions(svc transactions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, orderID, ok := parseTransactionScope(r, logg, w)
		if !ok {
			return
		}

		params := pagination.FromRequest(r)
		list, err := svc.List(r.Context(), merchantID, orderID, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WritePage(w, list.Transactions, params.MetaFor(list.Total))
	}
}
