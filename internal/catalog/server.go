package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	catalog *Catalog
}

func NewServer(c *Catalog) *Server {
	return &Server{catalog: c}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)
	r.Get("/djs", s.handleSearch)
	r.Get("/djs/{id}", s.handleGetDJ)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "catalog",
	})
}
