package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mathdemo/internal/calculator"
	"mathdemo/internal/handlers"
	"mathdemo/internal/observability"
)

// NewRouter wires middleware, the operational endpoints and the calculator
// API into one handler.
func NewRouter() http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusNotFound, "not found", observability.RequestIDFromContext(r.Context()))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusMethodNotAllowed, "method not allowed", observability.RequestIDFromContext(r.Context()))
	})

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	calculator.RegisterRoutes(r)

	return r
}
