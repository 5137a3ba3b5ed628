package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/api/routes"
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
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/migrate"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	svcs, err := buildServices(dbClient, sessionManager, cfg)
	if err != nil {
		logg.Error(context.Background(), "failed to build services", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	handler := routes.New(svcs, routes.Deps{
		Config:      cfg,
		Logger:      logg,
		DB:          dbClient,
		Redis:       redisClient,
		Sessions:    sessionManager,
		HTTPMetrics: httpMetrics,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stop:
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var closeErr error
	closeErr = multierr.Append(closeErr, server.Shutdown(shutdownCtx))
	closeErr = multierr.Append(closeErr, redisClient.Close())
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if closeErr != nil {
		logg.Error(ctx, "shutdown finished with errors", closeErr)
		os.Exit(1)
	}
	logg.Info(ctx, "shutdown complete")
}

func buildServices(dbClient *db.Client, sessionManager *session.Manager, cfg *config.Config) (routes.Services, error) {
	gdb := dbClient.DB()

	authService, err := internalauth.NewService(users.NewRepository(gdb), sessionManager, cfg.JWT, cfg.Password)
	if err != nil {
		return routes.Services{}, err
	}
	usersService, err := users.NewService(users.NewRepository(gdb), cfg.Password)
	if err != nil {
		return routes.Services{}, err
	}
	merchantsService, err := merchants.NewService(merchants.NewRepository(gdb))
	if err != nil {
		return routes.Services{}, err
	}
	couriersService, err := couriers.NewService(couriers.NewRepository(gdb))
	if err != nil {
		return routes.Services{}, err
	}
	ordersService, err := orders.NewService(orders.NewRepository(gdb))
	if err != nil {
		return routes.Services{}, err
	}
	assignmentsService, err := assignments.NewService(assignments.NewRepository(gdb), dbClient)
	if err != nil {
		return routes.Services{}, err
	}
	transactionsService, err := transactions.NewService(transactions.NewRepository(gdb), dbClient)
	if err != nil {
		return routes.Services{}, err
	}
	statusesService, err := statuses.NewService(statuses.NewRepository(gdb))
	if err != nil {
		return routes.Services{}, err
	}
	contactsService, err := contacts.NewService(contacts.NewRepository(gdb))
	if err != nil {
		return routes.Services{}, err
	}

	return routes.Services{
		Auth:         authService,
		Users:        usersService,
		Merchants:    merchantsService,
		Couriers:     couriersService,
		Orders:       ordersService,
		Assignments:  assignmentsService,
		Transactions: transactionsService,
		Statuses:     statusesService,
		Contacts:     contactsService,
	}, nil
}
