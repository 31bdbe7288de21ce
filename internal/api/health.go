package api

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"taktapp/planner/internal/models/entities"
)

// HealthCheckHandler handles GET /health: liveness plus a store ping.
func HealthCheckHandler(sdb *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]entities.ServiceStatus)

		storeStatus := "ok"
		storeDetails := "SQLite reachable"
		if err := sdb.PingContext(r.Context()); err != nil {
			storeStatus = "down"
			storeDetails = err.Error()
		}
		services["sqlite"] = entities.ServiceStatus{
			Status:  storeStatus,
			Details: storeDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		uptime := time.Since(upSince).Round(time.Second).String()

		writeJSON(w, http.StatusOK, entities.HealthCheckResponse{
			Status:   overallStatus,
			Uptime:   uptime,
			Services: services,
		})
	}
}
