// Package web serves the embedded planner page. Static UI rendering sits
// entirely outside the state engine.
package web

import (
	"embed"
	"net/http"
)

//go:embed static/planner.html
var staticFiles embed.FS

// PlannerHandler serves the single-page planner UI at /.
func PlannerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := staticFiles.ReadFile("static/planner.html")
		if err != nil {
			http.Error(w, "planner page unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	}
}
