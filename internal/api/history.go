package api

import (
	"net/http"
	"strconv"

	"taktapp/planner/internal/constants"
)

// HistoryListHandler handles GET /api/history with limit/offset pagination,
// most recent first.
func HistoryListHandler(historySvc HistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := queryInt(r, "limit", constants.DefaultHistoryLimit)
		offset := queryInt(r, "offset", 0)

		entries, err := historySvc.List(r.Context(), limit, offset)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
