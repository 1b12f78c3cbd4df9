package playlist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ichigoyakuza/findmydjapp-sub001/internal/authz"
)

func (s *Server) handleAddTrack(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	viewer := authz.ViewerFromRequest(r)
	if !authz.Allow(w, viewer, authz.Requirement{
		RequireAuth: true,
		Resource:    "playlist",
		Action:      "update",
		ResourceID:  id,
	}) {
		return
	}

	var t Track
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	t.Title = strings.TrimSpace(t.Title)
	t.Artist = strings.TrimSpace(t.Artist)
	if len(t.Title) > 300 {
		writeError(w, http.StatusBadRequest, "title must be between 1 and 300 characters")
		return
	}
	if len(t.Artist) > 200 {
		writeError(w, http.StatusBadRequest, "artist is too long")
		return
	}
	if t.Duration < 0 {
		writeError(w, http.StatusBadRequest, "duration must not be negative")
		return
	}

	pl, err := s.store.AddTrack(r.Context(), id, t, viewer.UserID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pl)
}

func (s *Server) handleRemoveTrack(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	trackID := chi.URLParam(r, "trackId")
	viewer := authz.ViewerFromRequest(r)
	if !authz.Allow(w, viewer, authz.Requirement{
		RequireAuth: true,
		Resource:    "playlist",
		Action:      "update",
		ResourceID:  id,
	}) {
		return
	}

	pl, err := s.store.RemoveTrack(r.Context(), id, trackID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pl)
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	var t Track
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	liked, err := s.store.ToggleLike(r.Context(), t)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"trackId": t.ID,
		"liked":   liked,
	})
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"tracks": s.store.Favorites(),
	})
}
