package catalog

import (
	"log"
	"sync"
	"time"
)

// Catalog owns the demo DJ listings. There is no real provider backend in
// scope; the listings are fixtures that become available after a simulated
// load delay, mimicking the initial fetch the front-end waits on.
type Catalog struct {
	mu    sync.RWMutex
	djs   []DJ
	ready bool
}

// NewDemoCatalog starts loading the demo listings in the background. With a
// zero delay the catalog is ready immediately.
func NewDemoCatalog(delay time.Duration) *Catalog {
	c := &Catalog{}
	if delay <= 0 {
		c.djs = demoDJs()
		c.ready = true
		return c
	}
	go func() {
		time.Sleep(delay)
		c.mu.Lock()
		c.djs = demoDJs()
		c.ready = true
		c.mu.Unlock()
		log.Printf("findmydj: catalog loaded (%d listings)", len(c.djs))
	}()
	return c
}

// Ready reports whether the initial load has completed.
func (c *Catalog) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// All returns the full catalog in original order. The returned slice is a
// copy; callers may not mutate records through it anyway.
func (c *Catalog) All() []DJ {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]DJ, len(c.djs))
	copy(out, c.djs)
	return out
}

// Exists reports whether a listing with the given id is in the catalog.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// Owner returns the account managing a listing. Listings without a linked
// account report false.
func (c *Catalog) Owner(id string) (string, bool) {
	d, ok := c.Get(id)
	if !ok || d.OwnerID == "" {
		return "", false
	}
	return d.OwnerID, true
}

// Get returns the listing with the given id.
func (c *Catalog) Get(id string) (DJ, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, d := range c.djs {
		if d.ID == id {
			return d, true
		}
	}
	return DJ{}, false
}

func demoDJs() []DJ {
	return []DJ{
		{
			ID:         "dj-1",
			Name:       "DJ Nexus",
			City:       "Miami, FL",
			Genres:     []string{"House", "Techno"},
			Rating:     4.9,
			Bookings:   127,
			Available:  true,
			OwnerID:    "user-dj-1",
			PriceRange: "$$$",
		},
		{
			ID:         "dj-2",
			Name:       "Bass Master",
			City:       "New York, NY",
			Genres:     []string{"Hip-Hop", "Trap"},
			Rating:     4.7,
			Bookings:   94,
			Available:  true,
			PriceRange: "$$",
		},
		{
			ID:         "dj-3",
			Name:       "Luna Waves",
			City:       "Los Angeles, CA",
			Genres:     []string{"Deep House", "Melodic Techno"},
			Rating:     4.8,
			Bookings:   156,
			Available:  false,
			PriceRange: "$$$",
		},
		{
			ID:         "dj-4",
			Name:       "Vinyl Vince",
			City:       "Chicago, IL",
			Genres:     []string{"Disco", "Funk", "House"},
			Rating:     4.5,
			Bookings:   63,
			Available:  true,
			PriceRange: "$$",
		},
		{
			ID:         "dj-5",
			Name:       "Aurora Beats",
			City:       "Miami, FL",
			Genres:     []string{"EDM", "Progressive"},
			Rating:     4.2,
			Bookings:   38,
			Available:  true,
			PriceRange: "$",
		},
		{
			ID:         "dj-6",
			Name:       "Static Flow",
			City:       "Austin, TX",
			Genres:     []string{"Drum & Bass", "Jungle"},
			Rating:     3.9,
			Bookings:   21,
			Available:  false,
			PriceRange: "$",
		},
	}
}
