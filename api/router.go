package api

import (
	"bubblebrew_server/api/middleware"
	"bubblebrew_server/config"
	"bubblebrew_server/database"
	"bubblebrew_server/services"
	"context"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

func App() chi.Router {
	r := chi.NewRouter()

	// create loggers
	logLevel := gecho.ParseLogLevel(config.GetLogLevel())
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))
	standardLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))

	// store
	store := database.GetInstance()

	// config
	cfg := config.GetConfig()

	// services
	sm := services.NewServiceManager(standardLogger, cfg, store)

	// The list endpoints serve from these snapshots; a failed load degrades
	// them to per-request reads.
	ctx := context.Background()
	if err := sm.MenuProjection.Load(ctx); err != nil {
		standardLogger.Warn("Menu projection unavailable", gecho.Field("error", err))
	}
	if err := sm.OrderProjection.Load(ctx); err != nil {
		standardLogger.Warn("Order projection unavailable", gecho.Field("error", err))
	}
	if err := sm.HistoryProjection.Load(ctx); err != nil {
		standardLogger.Warn("History projection unavailable", gecho.Field("error", err))
	}

	// Initialize middleware
	mw := middleware.NewMiddleware(mwLogger)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(10 * 1024 * 1024))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(gecho.Handlers.CreateLoggingMiddleware(mwLogger))
	r.Use(middleware.MetricsMiddleware)

	// CORS
	r.Use(mw.SetupCORS().Handler)

	// Register all routes
	NewRouterManager(standardLogger, store, sm).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		gecho.Success(w,
			gecho.WithMessage("Welcome to the Bubble Brew API"),
			gecho.Send(),
		)
	})

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}
