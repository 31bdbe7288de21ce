package api

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"taktapp/planner/internal/logging"
)

// Tabular exports are a pure read-side formatting layer over the same
// snapshots the JSON API serves.

// ExportHistoryCSVHandler handles GET /export/history.csv.
func ExportHistoryCSVHandler(historySvc HistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := historySvc.ExportAll(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="history.csv"`)

		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"finished_at", "vehicle_name", "hours", "employees", "band_employees", "station"})
		for _, entry := range entries {
			_ = cw.Write([]string{
				entry.FinishedAt.Format(time.RFC3339),
				entry.VehicleName,
				formatFloat(entry.Hours),
				fmt.Sprintf("%d", entry.Employees),
				fmt.Sprintf("%d", entry.BandEmployees),
				fmt.Sprintf("%d", entry.Station),
			})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			logging.Error("CSV export failed", "error", err.Error())
		}
	}
}

// ExportPlanCSVHandler handles GET /export/plan.csv: the combined plan
// flattened into band and queue rows.
func ExportPlanCSVHandler(planSvc PlanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, err := planSvc.Get(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="plan.csv"`)

		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"type", "station", "position", "vehicle_name", "hours", "employees"})
		for _, slot := range plan.Band {
			row := []string{"band", fmt.Sprintf("%d", slot.Station), "", "", "", ""}
			if slot.Vehicle != nil {
				row[3] = slot.Vehicle.Name
				row[4] = formatFloat(slot.Vehicle.Hours)
				row[5] = fmt.Sprintf("%d", slot.Vehicle.Employees)
			}
			_ = cw.Write(row)
		}
		for position, vehicle := range plan.Queue {
			_ = cw.Write([]string{
				"queue",
				"",
				fmt.Sprintf("%d", position),
				vehicle.Name,
				formatFloat(vehicle.Hours),
				fmt.Sprintf("%d", vehicle.Employees),
			})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			logging.Error("CSV export failed", "error", err.Error())
		}
	}
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
