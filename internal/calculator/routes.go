package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts one POST endpoint per operation under /calculator.
func RegisterRoutes(r chi.Router) {
	r.Route("/calculator", func(r chi.Router) {
		for _, op := range Operations {
			r.Post("/"+string(op), Handler(op))
		}
	})
}
