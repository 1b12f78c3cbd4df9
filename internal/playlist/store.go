package playlist

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ichigoyakuza/findmydjapp-sub001/internal/events"
)

// Store is the in-memory playlist collection. A single mutex serializes
// every mutation, standing in for the single-threaded event loop the
// front-end relied on; no operation ever exposes partial state.
type Store struct {
	mu        sync.Mutex
	playlists []Playlist
	favorites map[string]Track
	currentID string
	loading   bool
	lastErr   error

	pub events.Publisher
}

// NewStore creates an empty store. The publisher may be nil, in which case
// mutation events are dropped.
func NewStore(pub events.Publisher) *Store {
	return &Store{
		favorites: map[string]Track{},
		pub:       pub,
	}
}

// LoadDemo populates the store with demo playlists after the given delay,
// mimicking the initial fetch. The loading flag is guaranteed to reset even
// if population fails.
func (s *Store) LoadDemo(delay time.Duration) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	load := func() {
		s.mu.Lock()
		defer func() {
			s.loading = false
			s.mu.Unlock()
		}()
		s.playlists = append(demoPlaylists(), s.playlists...)
	}

	if delay <= 0 {
		load()
		return
	}
	go func() {
		time.Sleep(delay)
		load()
		log.Printf("findmydj: playlist demo data loaded")
	}()
}

// Loading reports whether the initial demo load is still in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastErr returns the most recent mutation error, if any.
func (s *Store) LastErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// CreateSpec carries the caller-supplied fields for Create.
type CreateSpec struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Tracks        []Track  `json:"tracks"`
	CoverArt      string   `json:"coverArt"`
	IsPublic      bool     `json:"isPublic"`
	Collaborative bool     `json:"collaborative"`
	Tags          []string `json:"tags"`
	Category      string   `json:"category"`
}

// Create adds a new playlist at the front of the collection.
func (s *Store) Create(ctx context.Context, ownerID string, spec CreateSpec) (Playlist, error) {
	spec.Name = strings.TrimSpace(spec.Name)
	if err := validateName(spec.Name); err != nil {
		return Playlist{}, s.fail(err)
	}
	if err := validateDescription(spec.Description); err != nil {
		return Playlist{}, s.fail(err)
	}
	category := spec.Category
	if category == "" {
		category = CategoryPersonal
	}
	if !validCategory(category) {
		return Playlist{}, s.fail(validationError("unknown category %q", category))
	}

	now := time.Now()
	pl := Playlist{
		ID:            uuid.NewString(),
		Name:          spec.Name,
		Description:   strings.TrimSpace(spec.Description),
		Tracks:        append([]Track{}, spec.Tracks...),
		CoverArt:      spec.CoverArt,
		IsPublic:      spec.IsPublic,
		Collaborative: spec.Collaborative,
		OwnerID:       ownerID,
		CreatedAt:     now,
		UpdatedAt:     now,
		TotalDuration: totalDuration(spec.Tracks),
		Tags:          append([]string(nil), spec.Tags...),
		Category:      category,
	}

	s.mu.Lock()
	s.playlists = append([]Playlist{pl}, s.playlists...)
	s.mu.Unlock()

	s.publish(ctx, "playlist.created", map[string]any{"playlist": pl})
	return clone(pl), nil
}

// Update describes a partial, field-level merge. Nil fields are untouched.
type Update struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	CoverArt      *string   `json:"coverArt"`
	IsPublic      *bool     `json:"isPublic"`
	Collaborative *bool     `json:"collaborative"`
	Tracks        *[]Track  `json:"tracks"`
	Tags          *[]string `json:"tags"`
	Category      *string   `json:"category"`
}

// UpdatePlaylist merges the partial into the matching entry. A new track
// list recomputes the total duration; UpdatedAt is refreshed regardless of
// which fields changed.
func (s *Store) UpdatePlaylist(ctx context.Context, id string, up Update) (Playlist, error) {
	// Validate before touching anything so a failed update leaves no trace.
	if up.Name != nil {
		trimmed := strings.TrimSpace(*up.Name)
		if err := validateName(trimmed); err != nil {
			return Playlist{}, s.fail(err)
		}
		up.Name = &trimmed
	}
	if up.Description != nil {
		if err := validateDescription(*up.Description); err != nil {
			return Playlist{}, s.fail(err)
		}
	}
	if up.Category != nil && !validCategory(*up.Category) {
		return Playlist{}, s.fail(validationError("unknown category %q", *up.Category))
	}

	s.mu.Lock()
	i := s.find(id)
	if i < 0 {
		s.mu.Unlock()
		return Playlist{}, s.fail(ErrNotFound)
	}

	pl := s.playlists[i]
	if up.Name != nil {
		pl.Name = *up.Name
	}
	if up.Description != nil {
		pl.Description = strings.TrimSpace(*up.Description)
	}
	if up.CoverArt != nil {
		pl.CoverArt = *up.CoverArt
	}
	if up.IsPublic != nil {
		pl.IsPublic = *up.IsPublic
	}
	if up.Collaborative != nil {
		pl.Collaborative = *up.Collaborative
	}
	if up.Tags != nil {
		pl.Tags = append([]string(nil), *up.Tags...)
	}
	if up.Category != nil {
		pl.Category = *up.Category
	}
	if up.Tracks != nil {
		pl.Tracks = append([]Track{}, (*up.Tracks)...)
		pl.TotalDuration = totalDuration(pl.Tracks)
	}
	pl.UpdatedAt = time.Now()
	s.playlists[i] = pl
	s.mu.Unlock()

	s.publish(ctx, "playlist.updated", map[string]any{"playlist": pl})
	return clone(pl), nil
}

// Delete removes the matching entry. Deleting the currently selected
// playlist clears the selection.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.find(id)
	if i < 0 {
		s.mu.Unlock()
		return s.fail(ErrNotFound)
	}
	s.playlists = append(s.playlists[:i], s.playlists[i+1:]...)
	if s.currentID == id {
		s.currentID = ""
	}
	s.mu.Unlock()

	s.publish(ctx, "playlist.deleted", map[string]any{"playlistId": id})
	return nil
}

// AddTrack appends the track to the playlist, stamped with its add time.
func (s *Store) AddTrack(ctx context.Context, playlistID string, t Track, addedBy string) (Playlist, error) {
	if strings.TrimSpace(t.Title) == "" {
		return Playlist{}, s.fail(validationError("track title is required"))
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now()
	t.AddedAt = &now
	t.AddedBy = addedBy

	s.mu.Lock()
	i := s.find(playlistID)
	if i < 0 {
		s.mu.Unlock()
		return Playlist{}, s.fail(ErrNotFound)
	}
	pl := s.playlists[i]
	pl.Tracks = append(append([]Track{}, pl.Tracks...), t)
	pl.TotalDuration += t.Duration
	pl.UpdatedAt = now
	s.playlists[i] = pl
	s.mu.Unlock()

	s.publish(ctx, "track.added", map[string]any{"playlistId": playlistID, "track": t})
	return clone(pl), nil
}

// RemoveTrack removes the first track with the given id. An unknown track
// leaves the list (and total) unchanged but still refreshes UpdatedAt.
func (s *Store) RemoveTrack(ctx context.Context, playlistID, trackID string) (Playlist, error) {
	s.mu.Lock()
	i := s.find(playlistID)
	if i < 0 {
		s.mu.Unlock()
		return Playlist{}, s.fail(ErrNotFound)
	}
	pl := s.playlists[i]
	tracks := append([]Track{}, pl.Tracks...)
	for j, t := range tracks {
		if t.ID == trackID {
			pl.TotalDuration -= t.Duration
			tracks = append(tracks[:j], tracks[j+1:]...)
			break
		}
	}
	pl.Tracks = tracks
	pl.UpdatedAt = time.Now()
	s.playlists[i] = pl
	s.mu.Unlock()

	s.publish(ctx, "track.removed", map[string]any{"playlistId": playlistID, "trackId": trackID})
	return clone(pl), nil
}

// ToggleLike flips the track's membership in the favorites set and updates
// the like flag on every occurrence of the track across all playlists. Both
// effects happen under one lock acquisition.
func (s *Store) ToggleLike(ctx context.Context, t Track) (bool, error) {
	if t.ID == "" {
		return false, s.fail(validationError("track id is required"))
	}

	s.mu.Lock()
	_, liked := s.favorites[t.ID]
	liked = !liked
	if liked {
		t.Liked = true
		s.favorites[t.ID] = t
	} else {
		delete(s.favorites, t.ID)
	}
	now := time.Now()
	for i := range s.playlists {
		touched := false
		for j := range s.playlists[i].Tracks {
			if s.playlists[i].Tracks[j].ID == t.ID {
				s.playlists[i].Tracks[j].Liked = liked
				touched = true
			}
		}
		if touched {
			s.playlists[i].UpdatedAt = now
		}
	}
	s.mu.Unlock()

	s.publish(ctx, "track.liked", map[string]any{"trackId": t.ID, "liked": liked})
	return liked, nil
}

// Duplicate copies a playlist for the given user: fresh id and timestamps,
// private visibility, no followers. Track values are shared as-is.
func (s *Store) Duplicate(ctx context.Context, id, ownerID string) (Playlist, error) {
	s.mu.Lock()
	i := s.find(id)
	if i < 0 {
		s.mu.Unlock()
		return Playlist{}, s.fail(ErrNotFound)
	}
	src := s.playlists[i]

	now := time.Now()
	dup := Playlist{
		ID:            uuid.NewString(),
		Name:          src.Name + " (Copy)",
		Description:   src.Description,
		Tracks:        append([]Track{}, src.Tracks...),
		CoverArt:      src.CoverArt,
		IsPublic:      false,
		Collaborative: false,
		OwnerID:       ownerID,
		CreatedAt:     now,
		UpdatedAt:     now,
		TotalDuration: src.TotalDuration,
		Followers:     0,
		Tags:          append([]string(nil), src.Tags...),
		Category:      CategoryPersonal,
	}
	s.playlists = append([]Playlist{dup}, s.playlists...)
	s.mu.Unlock()

	s.publish(ctx, "playlist.created", map[string]any{"playlist": dup})
	return clone(dup), nil
}

// Select marks a playlist as the current one.
func (s *Store) Select(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.find(id) < 0 {
		s.mu.Unlock()
		return s.fail(ErrNotFound)
	}
	s.currentID = id
	s.mu.Unlock()

	s.publish(ctx, "playlist.selected", map[string]any{"playlistId": id})
	return nil
}

// Current returns the currently selected playlist, if any.
func (s *Store) Current() (Playlist, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentID == "" {
		return Playlist{}, false
	}
	if i := s.find(s.currentID); i >= 0 {
		return clone(s.playlists[i]), true
	}
	return Playlist{}, false
}

// List returns every playlist in collection order (newest first).
func (s *Store) List() []Playlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Playlist, 0, len(s.playlists))
	for _, pl := range s.playlists {
		out = append(out, clone(pl))
	}
	return out
}

// Get returns the playlist with the given id.
func (s *Store) Get(id string) (Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.find(id); i >= 0 {
		return clone(s.playlists[i]), nil
	}
	return Playlist{}, ErrNotFound
}

// Owner reports who owns the playlist, for permission checks.
func (s *Store) Owner(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.find(id); i >= 0 {
		return s.playlists[i].OwnerID, true
	}
	return "", false
}

// Favorites returns the liked tracks.
func (s *Store) Favorites() []Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Track, 0, len(s.favorites))
	for _, t := range s.favorites {
		out = append(out, t)
	}
	return out
}

// find returns the index of the playlist with the given id, or -1. Callers
// must hold the mutex.
func (s *Store) find(id string) int {
	for i := range s.playlists {
		if s.playlists[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) fail(err error) error {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	return err
}

func (s *Store) publish(ctx context.Context, typ string, payload any) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(ctx, events.Event{Type: typ, Payload: payload}); err != nil {
		log.Printf("findmydj: publish %s: %v", typ, err)
	}
}

func clone(pl Playlist) Playlist {
	pl.Tracks = append([]Track{}, pl.Tracks...)
	pl.Tags = append([]string(nil), pl.Tags...)
	return pl
}

func validateName(name string) error {
	if name == "" || len(name) > 200 {
		return validationError("name must be between 1 and 200 characters")
	}
	return nil
}

func validateDescription(desc string) error {
	if len(desc) > 1000 {
		return validationError("description is too long")
	}
	return nil
}

func validCategory(c string) bool {
	switch c {
	case CategoryPersonal, CategoryShared, CategoryPublic, CategoryFavorites:
		return true
	}
	return false
}
