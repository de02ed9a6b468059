package api

import (
	"net/http"

	"truckload-plan-service/internal/api/handlers"
	"truckload-plan-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.RequestRepository) http.Handler {
	mux := http.NewServeMux()

	reqHandler := &handlers.RequestHandler{Repo: repo}
	planHandler := handlers.NewPlanHandler(repo)

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/requests", reqHandler.List)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/plans/export", planHandler.Export)

	return loggingMiddleware(mux)
}
