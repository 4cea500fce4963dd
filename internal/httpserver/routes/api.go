package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mesh-intelligence/scratchbook/internal/httpserver/deps"
	"github.com/mesh-intelligence/scratchbook/internal/httpserver/handlers"
)

func init() { Register(registerAPI, middleware.NoCache) }

func registerAPI(r chi.Router, d deps.Deps) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/items", handlers.ListItems(d))
		r.Get("/items/recent", handlers.RecentItems(d))
		r.Get("/items/{id}", handlers.GetItem(d))
		r.Get("/stats", handlers.Stats(d))
		r.Get("/map", handlers.Map(d))
		r.Get("/documents", handlers.ListDocuments(d))
		r.Get("/documents/{id}/file", handlers.DocumentFile(d))
		r.Get("/websites", handlers.ListWebsites(d))
		r.Get("/export.json", handlers.ExportJSON(d))
		r.Get("/export.csv", handlers.ExportCSV(d))
	})
}
