package controllers

import (
	"net/http"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/responses"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/statuses"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/logger"
)

// ListStatuses handles GET /api/v1/statuses?type=Order|Transaction.
func ListStatuses(svc statuses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context(), r.URL.Query().Get("type"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}
