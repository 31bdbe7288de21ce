package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"taktapp/planner/internal/constants"
	"taktapp/planner/internal/models/dtos"
)

// PlanReadHandler handles GET /api/plan. Public read; repeated calls with no
// intervening write return identical data.
func PlanReadHandler(planSvc PlanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, err := planSvc.Get(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, plan)
	}
}

// PlanReplaceHandler handles POST /api/plan: a complete replacement of band
// and queue in one write, used for administrative corrections.
func PlanReplaceHandler(planSvc PlanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.PlanReplaceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}

		plan, err := planSvc.Replace(r.Context(), req)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, plan)
	}
}

// VehicleHandler handles GET /api/vehicles/{id}. Vehicles orphaned by a plan
// replacement stay retrievable here.
func VehicleHandler(planSvc PlanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid vehicle id")
			return
		}

		vehicle, err := planSvc.GetVehicle(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, vehicle)
	}
}
