package rest

import "net/http"

// Routes registers every endpoint on mux.
func Routes(mux *http.ServeMux, lookup *LookupHandler, health *HealthHandler) {
	mux.HandleFunc("GET /{$}", lookup.Page)
	mux.HandleFunc("POST /{$}", lookup.Submit)
	mux.HandleFunc("GET /api/lookup", lookup.API)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /health", health.Health)
}
