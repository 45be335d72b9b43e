package handlers

import (
	"net/http"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Root serves the service banner with the endpoint listing.
func (a *App) Root(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"status":    "Creative Ad Renderer API",
		"endpoints": []string{"/v1/generate-ad", "/v1/healthz"},
	})
}
