package playlist

import (
	"context"
	"encoding/json"
	"time"
)

// PortableDoc is the transferable playlist document. Unknown fields in an
// imported document are ignored; name and a tracks array are required.
type PortableDoc struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tracks      *[]Track `json:"tracks"`
	CoverArt    string   `json:"coverArt,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	ExportedAt *time.Time `json:"exportedAt,omitempty"`
}

// Import parses a portable document and creates a playlist from it. The
// result is always personal and private regardless of what the document
// claims.
func (s *Store) Import(ctx context.Context, ownerID string, contents []byte) (Playlist, error) {
	var doc PortableDoc
	if err := json.Unmarshal(contents, &doc); err != nil {
		return Playlist{}, s.fail(validationError("malformed playlist document"))
	}
	if doc.Name == "" {
		return Playlist{}, s.fail(validationError("name is required"))
	}
	if doc.Tracks == nil {
		return Playlist{}, s.fail(validationError("tracks must be an array"))
	}
	for _, t := range *doc.Tracks {
		if t.ID == "" || t.Title == "" {
			return Playlist{}, s.fail(validationError("each track needs an id and a title"))
		}
	}

	return s.Create(ctx, ownerID, CreateSpec{
		Name:        doc.Name,
		Description: doc.Description,
		Tracks:      *doc.Tracks,
		CoverArt:    doc.CoverArt,
		Tags:        doc.Tags,
		Category:    CategoryPersonal,
	})
}

// Export serializes the playlist's shareable fields. The store is not
// mutated.
func (s *Store) Export(id string) ([]byte, error) {
	pl, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tracks := pl.Tracks
	doc := PortableDoc{
		Name:        pl.Name,
		Description: pl.Description,
		Tracks:      &tracks,
		CoverArt:    pl.CoverArt,
		Tags:        pl.Tags,
		ExportedAt:  &now,
	}
	return json.MarshalIndent(doc, "", "  ")
}
