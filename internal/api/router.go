package api

import (
	"net/http"
	"wall-coverage-service/internal/api/handlers"
	"wall-coverage-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.TrajectoryRepository, toolSpeed float64, corsOrigins []string) http.Handler {
	mux := http.NewServeMux()

	trajectoryHandler := &handlers.TrajectoryHandler{
		Repo:      repo,
		ToolSpeed: toolSpeed,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/trajectories", trajectoryHandler.Collection)
	mux.HandleFunc("/trajectories/{id}", trajectoryHandler.ByID)
	mux.HandleFunc("/trajectories/{id}/metrics", trajectoryHandler.MetricsByID)

	return corsMiddleware(corsOrigins, loggingMiddleware(mux))
}
