package playlist

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ichigoyakuza/findmydjapp-sub001/internal/authz"
)

const maxImportBytes = 1 << 20

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	if s.store.Loading() {
		writeError(w, http.StatusServiceUnavailable, "playlists are loading")
		return
	}

	viewer := authz.ViewerFromRequest(r)

	// Public playlists plus the viewer's own; admins see everything.
	all := s.store.List()
	visible := make([]Playlist, 0, len(all))
	for _, pl := range all {
		if canView(viewer, pl) {
			visible = append(visible, pl)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"playlists": visible,
	})
}

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	viewer := authz.ViewerFromRequest(r)
	if !authz.Allow(w, viewer, authz.Requirement{
		RequireAuth: true,
		Resource:    "playlist",
		Action:      "create",
	}) {
		return
	}

	var spec CreateSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	pl, err := s.store.Create(r.Context(), viewer.UserID, spec)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pl)
}

func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pl, err := s.store.Get(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	viewer := authz.ViewerFromRequest(r)
	if !canView(viewer, pl) {
		writeError(w, http.StatusForbidden, "playlist is private")
		return
	}
	writeJSON(w, http.StatusOK, pl)
}

func (s *Server) handlePatchPlaylist(w http.ResponseWriter, r *http.Request) {
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

	var up Update
	if err := json.NewDecoder(r.Body).Decode(&up); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	pl, err := s.store.UpdatePlaylist(r.Context(), id, up)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pl)
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	viewer := authz.ViewerFromRequest(r)
	if !authz.Allow(w, viewer, authz.Requirement{
		RequireAuth: true,
		Resource:    "playlist",
		Action:      "delete",
		ResourceID:  id,
	}) {
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSelectPlaylist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pl, err := s.store.Get(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	// Selecting a playlist you cannot view would leak it through /current.
	viewer := authz.ViewerFromRequest(r)
	if !canView(viewer, pl) {
		writeError(w, http.StatusForbidden, "playlist is private")
		return
	}

	if err := s.store.Select(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCurrentPlaylist(w http.ResponseWriter, r *http.Request) {
	pl, ok := s.store.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "no playlist selected")
		return
	}

	viewer := authz.ViewerFromRequest(r)
	if !canView(viewer, pl) {
		writeError(w, http.StatusForbidden, "playlist is private")
		return
	}
	writeJSON(w, http.StatusOK, pl)
}

func (s *Server) handleDuplicatePlaylist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	viewer := authz.ViewerFromRequest(r)
	if !authz.Allow(w, viewer, authz.Requirement{
		RequireAuth: true,
		Resource:    "playlist",
		Action:      "create",
	}) {
		return
	}

	pl, err := s.store.Duplicate(r.Context(), id, viewer.UserID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pl)
}

func (s *Server) handleImportPlaylist(w http.ResponseWriter, r *http.Request) {
	viewer := authz.ViewerFromRequest(r)
	if !authz.Allow(w, viewer, authz.Requirement{
		RequireAuth: true,
		Resource:    "playlist",
		Action:      "import",
	}) {
		return
	}

	contents, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	pl, err := s.store.Import(r.Context(), viewer.UserID, contents)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pl)
}

func (s *Server) handleExportPlaylist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pl, err := s.store.Get(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	viewer := authz.ViewerFromRequest(r)
	if !canView(viewer, pl) {
		writeError(w, http.StatusForbidden, "playlist is private")
		return
	}

	doc, err := s.store.Export(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="playlist.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (s *Server) handleSharePlaylist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pl, err := s.store.Get(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	viewer := authz.ViewerFromRequest(r)
	if !canView(viewer, pl) {
		writeError(w, http.StatusForbidden, "playlist is private")
		return
	}

	url, err := s.sharer.Share(id)
	if err != nil {
		log.Printf("findmydj: share playlist %s: %v", id, err)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error": "sharing failed",
			"url":   url,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"url": url})
}

// canView is the visibility rule for a single playlist: public, owned by
// the viewer, or the viewer is an admin.
func canView(viewer authz.Context, pl Playlist) bool {
	return pl.IsPublic || viewer.Role == authz.RoleAdmin || pl.OwnerID == viewer.UserID
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "playlist not found")
	case errors.Is(err, ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("findmydj: playlist store: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
