package playlist

import "time"

// Track is an immutable value record; sharing one track across playlists
// is safe. Duration feeds the playlist total, so it is load-bearing.
type Track struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Album    string  `json:"album,omitempty"`
	Duration int     `json:"duration"` // seconds
	URL      string  `json:"url"`
	CoverArt string  `json:"coverArt,omitempty"`
	Genre    string  `json:"genre,omitempty"`
	Year     int     `json:"year,omitempty"`
	BPM      int     `json:"bpm,omitempty"`
	Key      string  `json:"key,omitempty"`
	Liked    bool    `json:"liked"`
	Plays    int     `json:"plays,omitempty"`
	Rating   float64 `json:"rating,omitempty"`

	AddedAt *time.Time `json:"addedAt,omitempty"`
	AddedBy string     `json:"addedBy,omitempty"`
}

// Playlist category values.
const (
	CategoryPersonal  = "personal"
	CategoryShared    = "shared"
	CategoryPublic    = "public"
	CategoryFavorites = "favorites"
)

// Playlist is an ordered collection of tracks. TotalDuration is derived
// from the track list and must be recomputed on every mutation; mutating
// fields outside the store bypasses that invariant.
type Playlist struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Tracks        []Track   `json:"tracks"`
	CoverArt      string    `json:"coverArt,omitempty"`
	IsPublic      bool      `json:"isPublic"`
	Collaborative bool      `json:"collaborative"`
	OwnerID       string    `json:"ownerId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	TotalDuration int       `json:"totalDuration"`
	Followers     int       `json:"followers,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	Category      string    `json:"category"`
}

func totalDuration(tracks []Track) int {
	total := 0
	for _, t := range tracks {
		total += t.Duration
	}
	return total
}
