package webui

import (
	"net/http"
)

// dashboardHandler serves the single-page dashboard. The page talks to
// the JSON API with the embedded "web" key and renders its charts with
// Plotly loaded from a CDN.
func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	page, err := templateFS.ReadFile("dashboard.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(page)
}
