package api

import (
	"encoding/json"
	"net/http"

	"taktapp/planner/internal/constants"
	"taktapp/planner/internal/models/dtos"
)

// QueueAddHandler handles POST /api/queue: append one vehicle to the tail of
// the intake queue.
func QueueAddHandler(queueSvc QueueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.QueueAddRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, constants.MsgInvalidBody)
			return
		}

		queue, err := queueSvc.Add(r.Context(), req.Vehicle)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dtos.QueueResponse{Queue: queue})
	}
}
