package controllers

import (
	"context"
	"net/http"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/responses"
	pkgerrors "github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/errors"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Liveness handles GET /health/live.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// Readiness handles GET /health/ready. It reports unavailable when either
// backing store cannot be reached.
func Readiness(db, cache pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{"database": "ok", "redis": "ok"}
		healthy := true

		if db == nil || db.Ping(r.Context()) != nil {
			checks["database"] = "unreachable"
			healthy = false
		}
		if cache == nil || cache.Ping(r.Context()) != nil {
			checks["redis"] = "unreachable"
			healthy = false
		}

		if !healthy {
			err := pkgerrors.New(pkgerrors.CodeDependency, "service not ready")
			responses.WriteError(r.Context(), logg, w, err.WithDetails(checks))
			return
		}
		responses.WriteSuccess(w, checks)
	}
}
