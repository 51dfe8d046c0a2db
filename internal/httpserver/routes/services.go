package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/slatrack/internal/httpserver/deps"
	"github.com/MrSnakeDoc/slatrack/internal/httpserver/handlers"
)

func init() { Register(registerServices) }

func registerServices(r chi.Router, d deps.Deps) {
	r.Route("/services", func(r chi.Router) {
		r.Get("/", handlers.ListServices(d))
		r.Post("/", handlers.CreateService(d))
		r.Get("/{id}", handlers.GetStatusHistory(d))
		r.Put("/{id}", handlers.UpdateService(d))
		r.Get("/{id}/sla", handlers.GetSLA(d))
	})
}
