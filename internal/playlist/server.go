package playlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ichigoyakuza/findmydjapp-sub001/internal/authz"
)

type Server struct {
	store  *Store
	sharer *Sharer
}

func NewServer(store *Store, sharer *Sharer) *Server {
	return &Server{
		store:  store,
		sharer: sharer,
	}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)

	r.Get("/playlists", s.handleListPlaylists)
	r.Post("/playlists", s.handleCreatePlaylist)
	r.Post("/playlists/import", s.handleImportPlaylist)
	r.Get("/playlists/current", s.handleCurrentPlaylist)
	r.Get("/playlists/{id}", s.handleGetPlaylist)
	r.Patch("/playlists/{id}", s.handlePatchPlaylist)
	r.Delete("/playlists/{id}", s.handleDeletePlaylist)
	r.Post("/playlists/{id}/select", s.handleSelectPlaylist)
	r.Post("/playlists/{id}/duplicate", s.handleDuplicatePlaylist)
	r.Get("/playlists/{id}/export", s.handleExportPlaylist)
	r.Post("/playlists/{id}/share", s.handleSharePlaylist)

	r.Post("/playlists/{id}/tracks", s.handleAddTrack)
	r.Delete("/playlists/{id}/tracks/{trackId}", s.handleRemoveTrack)

	// Favorites share one requirement, so the whole subtree is gated once.
	r.Group(func(r chi.Router) {
		r.Use(authz.RequireWithNotice(authz.Requirement{RequireAuth: true}))
		r.Get("/favorites", s.handleListFavorites)
		r.Post("/favorites/toggle", s.handleToggleLike)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "playlist",
	})
}
