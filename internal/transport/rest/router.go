package rest

import (
	"net/http"

	"github.com/heartmarshall/miaudota/internal/transport/middleware"
)

// NewRouter registers the gateway routes and wraps them in mw.
func NewRouter(health *HealthHandler, pets *PetsHandler, mw middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /api/pets", pets.List)
	mux.HandleFunc("GET /api/pets/{id}", pets.Get)

	if mw == nil {
		return mux
	}
	return mw(mux)
}
