package api

import (
	"encoding/json"
	"net/http"

	"taktapp/planner/internal/constants"
	"taktapp/planner/internal/models/dtos"
)

// ConfigReadHandler handles GET /api/config.
func ConfigReadHandler(cfgSvc ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := cfgSvc.Get(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

// ConfigUpdateHandler handles PUT /api/config: full replacement of the
// stored configuration.
func ConfigUpdateHandler(cfgSvc ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.ConfigUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}

		cfg, err := cfgSvc.Replace(r.Context(), req)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}
