package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/middleware"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/enums"
	pkgerrors "github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/errors"
)

// requireMerchantAccess allows staff and admins through and otherwise checks
// that the caller is bound to the merchant in the path.
func requireMerchantAccess(r *http.Request, merchantID uuid.UUID) error {
	ctx := r.Context()
	if middleware.IsStaffFromContext(ctx) {
		return nil
	}
	if middleware.RoleFromContext(ctx) == enums.RoleAdmin.String() {
		return nil
	}
	if middleware.MerchantIDFromContext(ctx) == merchantID.String() {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeForbidden, "access to this merchant is not allowed")
}

// requireSelfAccess allows staff and admins through and otherwise checks
// that the caller is the user in the path.
func requireSelfAccess(r *http.Request, userID uuid.UUID) error {
	ctx := r.Context()
	if middleware.IsStaffFromContext(ctx) {
		return nil
	}
	if middleware.RoleFromContext(ctx) == enums.RoleAdmin.String() {
		return nil
	}
	if middleware.UserIDFromContext(ctx) == userID.String() {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeForbidden, "access to this resource is not allowed")
}

// authedUserID returns the caller's user id seeded by the auth middleware.
func authedUserID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	return id, nil
}
