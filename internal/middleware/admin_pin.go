package middleware

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"taktapp/planner/internal/constants"
	"taktapp/planner/internal/logging"
	"taktapp/planner/internal/models/dtos"
)

// PinSource loads the stored admin credential. Implemented by the config
// service so a rotated PIN takes effect on the next request.
type PinSource interface {
	AdminPin(ctx context.Context) (string, error)
}

// AdminPinMiddleware gates every mutating route: the X-Admin-Pin header must
// match the stored credential before any handler runs, so a rejected write
// has no side effects. Reads are registered outside this middleware.
func AdminPinMiddleware(pins PinSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			stored, err := pins.AdminPin(r.Context())
			if err != nil {
				logging.Error("Failed to load admin PIN", "error", err.Error())
				respondJSON(w, http.StatusInternalServerError, dtos.ErrorResponse{Error: "internal error"})
				return
			}

			supplied := r.Header.Get("X-Admin-Pin")
			if supplied == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(stored)) != 1 {
				respondJSON(w, http.StatusForbidden, dtos.ErrorResponse{Error: constants.MsgInvalidAdminPin})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
