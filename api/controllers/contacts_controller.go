package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/responses"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/validators"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/contacts"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/logger"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/pagination"
)

type createContactRequest struct {
	BusinessName string `json:"businessName" validate:"required"`
	ContactName  string `json:"contactName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	BusinessType string `json:"businessType" validate:"required"`
	DriversCount int    `json:"driversCount" validate:"min=0"`
	Message      string `json:"message" validate:"required"`
}

// CreateContact handles POST /api/v1/contacts. The endpoint is public.
func CreateContact(svc contacts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createContactRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		contact, err := svc.Create(r.Context(), contacts.CreateInput{
			BusinessName: req.BusinessName,
			ContactName:  req.ContactName,
			Email:        req.Email,
			Phone:        req.Phone,
			BusinessType: req.BusinessType,
			DriversCount: req.DriversCount,
			Message:      req.Message,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusCreated, contact, "thanks, we will be in touch")
	}
}

// ListContacts handles GET /api/v1/contacts.
func ListContacts(svc contacts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := pagination.FromRequest(r)

		list, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WritePage(w, list.Contacts, params.MetaFor(list.Total))
	}
}

// GetContact handles GET /api/v1/contacts/{contactId}.
func GetContact(svc contacts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := validators.ParsePathUUID(chi.URLParam(r, "contactId"), "contactId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		contact, err := svc.Get(r.Context(), contactID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, contact)
	}
}
