// Package hub serves the mocked recommendation lists shown in the music
// hub. None of this is computed; the payloads are demo fixtures.
package hub

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ichigoyakuza/findmydjapp-sub001/internal/playlist"
)

// Recommendation is one suggestion row: a title plus the tracks behind it.
type Recommendation struct {
	ID     string           `json:"id"`
	Title  string           `json:"title"`
	Reason string           `json:"reason"`
	Tracks []playlist.Track `json:"tracks"`
}

type Server struct{}

func NewServer() *Server {
	return &Server{}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)
	r.Get("/hub/recommendations", s.handleRecommendations)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"service": "hub",
	})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"recommendations": sampleRecommendations(),
	})
}

func sampleRecommendations() []Recommendation {
	return []Recommendation{
		{
			ID:     "rec-daily-mix",
			Title:  "Daily Mix",
			Reason: "Based on your recent listens",
			Tracks: []playlist.Track{
				{ID: "rec-trk-1", Title: "Golden Hour", Artist: "Aurora Beats", Duration: 221, URL: "https://cdn.demo.local/audio/golden-hour.mp3", Genre: "Progressive"},
				{ID: "rec-trk-2", Title: "Concrete Jungle", Artist: "Bass Master", Duration: 189, URL: "https://cdn.demo.local/audio/concrete-jungle.mp3", Genre: "Hip-Hop"},
			},
		},
		{
			ID:     "rec-trending",
			Title:  "Trending Now",
			Reason: "Popular with organizers this week",
			Tracks: []playlist.Track{
				{ID: "rec-trk-3", Title: "Neon Skyline", Artist: "DJ Nexus", Duration: 312, URL: "https://cdn.demo.local/audio/neon-skyline.mp3", Genre: "Techno"},
				{ID: "rec-trk-4", Title: "Night Shift", Artist: "Static Flow", Duration: 254, URL: "https://cdn.demo.local/audio/night-shift.mp3", Genre: "Drum & Bass"},
			},
		},
		{
			ID:     "rec-because-liked",
			Title:  "Because You Liked House",
			Reason: "More of what you favorited",
			Tracks: []playlist.Track{
				{ID: "rec-trk-5", Title: "Brass & Fire", Artist: "Vinyl Vince", Duration: 267, URL: "https://cdn.demo.local/audio/brass-and-fire.mp3", Genre: "Funk"},
			},
		},
	}
}
