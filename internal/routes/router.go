package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"

	"taktapp/planner/internal/api"
	"taktapp/planner/internal/logging"
	"taktapp/planner/internal/metrics"
	"taktapp/planner/internal/middleware"
	"taktapp/planner/internal/services"
	"taktapp/planner/internal/web"
)

// RegisterRoutes assembles the router: services over the shared store,
// global middleware, the public read surface and the PIN-gated write
// surface.
func RegisterRoutes(sdb *sqlx.DB, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Admin-Pin", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	planSvc := services.NewPlanService(sdb, metricsReg)
	bandSvc := services.NewBandService(sdb, metricsReg)
	queueSvc := services.NewQueueService(sdb, metricsReg)
	cfgSvc := services.NewConfigService(sdb)
	historySvc := services.NewHistoryService(sdb)

	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/", web.PlannerHandler())
	r.Get("/health", api.HealthCheckHandler(sdb, upSince))

	RegisterAPIRoutes(r, metricsReg, cfgSvc, planSvc, bandSvc, queueSvc, historySvc)

	return r
}
