package routes

import (
	"github.com/go-chi/chi/v5"

	"taktapp/planner/internal/api"
	"taktapp/planner/internal/metrics"
	"taktapp/planner/internal/middleware"
	"taktapp/planner/internal/services"
)

// RegisterAPIRoutes registers the JSON API and the CSV exports. Reads are
// public; every mutating route sits behind the admin PIN gate so a rejected
// write never reaches a handler.
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry,
	cfgSvc *services.ConfigService, planSvc api.PlanService, bandSvc api.BandService,
	queueSvc api.QueueService, historySvc api.HistoryService) {

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Use(middleware.MetricsMiddleware(metricsReg))

		// public reads
		apiRouter.Get("/plan", api.PlanReadHandler(planSvc))
		apiRouter.Get("/config", api.ConfigReadHandler(cfgSvc))
		apiRouter.Get("/history", api.HistoryListHandler(historySvc))
		apiRouter.Get("/vehicles/{id}", api.VehicleHandler(planSvc))

		// gated writes
		apiRouter.Group(func(gated chi.Router) {
			gated.Use(middleware.AdminPinMiddleware(cfgSvc))

			gated.Post("/plan", api.PlanReplaceHandler(planSvc))
			gated.Post("/band/advance", api.BandAdvanceHandler(bandSvc))
			gated.Post("/queue", api.QueueAddHandler(queueSvc))
			gated.Put("/config", api.ConfigUpdateHandler(cfgSvc))
		})
	})

	r.Route("/export", func(export chi.Router) {
		export.Use(middleware.MetricsMiddleware(metricsReg))
		export.Get("/history.csv", api.ExportHistoryCSVHandler(historySvc))
		export.Get("/plan.csv", api.ExportPlanCSVHandler(planSvc))
	})
}
