package api

import "net/http"

// BandAdvanceHandler handles POST /api/band/advance. No request body; the
// response is the post-transition plan view.
func BandAdvanceHandler(bandSvc BandService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, err := bandSvc.Advance(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, plan)
	}
}
