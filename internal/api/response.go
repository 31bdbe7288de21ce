package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"taktapp/planner/internal/constants"
	"taktapp/planner/internal/errs"
	"taktapp/planner/internal/logging"
	"taktapp/planner/internal/models/dtos"
)

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, dtos.ErrorResponse{Error: message})
}

// respondServiceError maps the error taxonomy onto HTTP status codes:
// validation 400, not found 404, unauthorized 403, busy store 503,
// everything else 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr *errs.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, dtos.ErrorResponse{Error: verr.Message, Field: verr.Field})
		return
	}
	if errs.IsNotFound(err) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	if errors.Is(err, errs.ErrUnauthorized) {
		respondError(w, http.StatusForbidden, constants.MsgInvalidAdminPin)
		return
	}
	if errors.Is(err, errs.ErrStoreBusy) {
		respondError(w, http.StatusServiceUnavailable, constants.MsgStoreBusy)
		return
	}

	logging.Error("Internal error", "error", err.Error())
	respondError(w, http.StatusInternalServerError, "internal server error")
}
