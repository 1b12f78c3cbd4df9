package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ichigoyakuza/findmydjapp-sub001/internal/authz"
)

type Server struct {
	store *Store
}

func NewServer(store *Store) *Server {
	return &Server{store: store}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)

	// Every booking route requires a signed-in viewer; role and permission
	// requirements are checked per handler.
	r.Group(func(r chi.Router) {
		r.Use(authz.RequireWithNotice(authz.Requirement{RequireAuth: true}))
		r.Get("/bookings", s.handleListBookings)
		r.Post("/bookings", s.handleCreateBooking)
		r.Post("/bookings/{id}/respond", s.handleRespond)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "booking",
	})
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	viewer := authz.ViewerFromRequest(r)

	var items []Request
	if viewer.Role == authz.RoleAdmin {
		items = s.store.All()
	} else {
		items = s.store.For(viewer.UserID)
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": items})
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	viewer := authz.ViewerFromRequest(r)
	if !authz.Allow(w, viewer, authz.Requirement{
		AllowedRoles: []authz.Role{authz.RoleOrganizer},
		Resource:     "booking",
		Action:       "create",
	}) {
		return
	}

	var spec Spec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req, err := s.store.Submit(r.Context(), viewer.UserID, spec)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (s *Server) handleRespond(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	viewer := authz.ViewerFromRequest(r)
	// ResourceID scopes the permission to the one DJ the request addresses.
	if !authz.Allow(w, viewer, authz.Requirement{
		AllowedRoles: []authz.Role{authz.RoleDJ},
		Resource:     "booking",
		Action:       "respond",
		ResourceID:   id,
	}) {
		return
	}

	var body struct {
		Accept bool `json:"accept"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req, err := s.store.Respond(r.Context(), id, body.Accept)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
