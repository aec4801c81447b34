package api

import (
	"facility-capacity-service/internal/api/handlers"
	"facility-capacity-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.RunRepository) http.Handler {
	mux := http.NewServeMux()

	optimizeHandler := &handlers.OptimizeHandler{Repo: repo}
	scheduleHandler := &handlers.ScheduleHandler{}
	runHandler := &handlers.RunHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/optimize", optimizeHandler.Optimize)
	mux.HandleFunc("/schedules", scheduleHandler.Schedule)
	mux.HandleFunc("/runs", runHandler.List)

	return loggingMiddleware(mux)
}
