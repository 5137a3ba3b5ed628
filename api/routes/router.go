package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/controllers"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/middleware"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/assignments"
	internalauth "github.com/aloush-dev-bom/Tapay-Backend-Test/internal/auth"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/contacts"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/couriers"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/merchants"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/orders"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/statuses"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/transactions"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/users"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/auth/session"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/config"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/logger"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/metrics"
	pkgredis "github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/redis"
)

// Services bundles the domain services mounted on the router.
type Services struct {
	Auth         internalauth.Service
	Users        users.Service
	Merchants    merchants.Service
	Couriers     couriers.Service
	Orders       orders.Service
	Assignments  assignments.Service
	Transactions transactions.Service
	Statuses     statuses.Service
	Contacts     contacts.Service
}

// Deps carries the infrastructure the router wires middleware from.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          *db.Client
	Redis       *pkgredis.Client
	Sessions    *session.Manager
	HTTPMetrics *metrics.HTTPMetrics
}

// New assembles the chi router: public health and contact endpoints, the
// auth endpoints behind rate limiting, and the protected v1 API behind JWT
// auth with idempotency on the replay-sensitive POSTs.
func New(svcs Services, deps Deps) http.Handler {
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(middleware.RequestID(logg))
	r.Use(middleware.Recoverer(logg))
	r.Use(middleware.Logging(logg, deps.HTTPMetrics))
	r.Use(middleware.CORS())

	r.Get("/health/live", controllers.Liveness())
	r.Get("/health/ready", controllers.Readiness(deps.DB, deps.Redis, logg))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	loginLimit := middleware.NewAuthRateLimitPolicy("login",
		deps.Config.AuthRateLimit.LoginWindow,
		deps.Config.AuthRateLimit.LoginIPLimit,
		deps.Config.AuthRateLimit.LoginEmailLimit)
	registerLimit := middleware.NewAuthRateLimitPolicy("register",
		deps.Config.AuthRateLimit.RegisterWindow,
		deps.Config.AuthRateLimit.RegisterIPLimit,
		deps.Config.AuthRateLimit.RegisterEmailLimit)

	authGuard := middleware.Auth(deps.Config.JWT, deps.Sessions, logg)
	idempotency := middleware.Idempotency(deps.Redis, logg)

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Route("/auth", func(ar chi.Router) {
			ar.With(middleware.AuthRateLimit(registerLimit, deps.Redis, logg), idempotency).
				Post("/register", controllers.Register(svcs.Auth, logg))
			ar.With(middleware.AuthRateLimit(loginLimit, deps.Redis, logg)).
				Post("/login", controllers.Login(svcs.Auth, logg))
			ar.Post("/refresh", controllers.Refresh(svcs.Auth, logg))

			ar.Group(func(pr chi.Router) {
				pr.Use(authGuard)
				pr.Post("/logout", controllers.Logout(svcs.Auth, logg))
				pr.Get("/profile", controllers.GetProfile(svcs.Users, logg))
				pr.Put("/profile", controllers.UpdateProfile(svcs.Users, logg))
				pr.Post("/change-password", controllers.ChangePassword(svcs.Users, logg))
			})
		})

		v1.Post("/contacts", controllers.CreateContact(svcs.Contacts, logg))

		v1.Group(func(pr chi.Router) {
			pr.Use(authGuard)

			pr.Get("/contacts", controllers.ListContacts(svcs.Contacts, logg))
			pr.Get("/contacts/{contactId}", controllers.GetContact(svcs.Contacts, logg))
			pr.Get("/statuses", controllers.ListStatuses(svcs.Statuses, logg))

			pr.Get("/merchants", controllers.ListMerchants(svcs.Merchants, logg))
			pr.With(idempotency).Post("/merchants", controllers.CreateMerchant(svcs.Merchants, logg))

			pr.Route("/merchants/{merchantId}", func(mr chi.Router) {
				mr.Get("/couriers", controllers.ListCouriers(svcs.Couriers, logg))

				mr.Get("/orders", controllers.ListMerchantOrders(svcs.Orders, logg))
				mr.With(idempotency).Post("/orders", controllers.CreateOrder(svcs.Orders, logg))

				mr.Route("/orders/{orderId}", func(or chi.Router) {
					or.Get("/", controllers.GetOrder(svcs.Orders, logg))

					or.With(idempotency).Post("/assignments", controllers.AssignCourier(svcs.Assignments, logg))

					or.Get("/transactions", controllers.ListTransactions(svcs.Transactions, logg))
					or.With(idempotency).Post("/transactions", controllers.CreateTransaction(svcs.Transactions, logg))
					or.Get("/transactions/{transactionId}", controllers.GetTransaction(svcs.Transactions, logg))
					or.Put("/transactions/{transactionId}", controllers.UpdateTransaction(svcs.Transactions, logg))
				})
			})

			pr.Get("/couriers/{courierId}/orders", controllers.ListCourierOrders(svcs.Orders, logg))
		})
	})

	return r
}
