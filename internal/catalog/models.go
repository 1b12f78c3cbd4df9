package catalog

// DJ is a provider listing shown in search results. Records are owned by
// the catalog source and treated as immutable by the filter engine.
type DJ struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	City      string   `json:"city"`
	Genres    []string `json:"genres"`
	Rating    float64  `json:"rating"` // 0..5
	Bookings  int      `json:"bookings"`
	Available bool     `json:"available"`

	// OwnerID links the listing to the account that manages it. Booking
	// requests address the listing; responses are scoped to this account.
	OwnerID string `json:"ownerId,omitempty"`

	// Presentation-only fields carried by the demo catalog. No filter
	// predicate reads these; see the note in filter.go.
	PriceRange string `json:"priceRange,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

// Filters is the structured multi-criteria search constraint. Fields are
// merged one at a time as the user interacts; ClearAll replaces the whole
// value with DefaultFilters().
type Filters struct {
	City       string   `json:"city"`
	Radius     int      `json:"radius"` // km, UI-informational only
	Genres     []string `json:"genres"`
	PriceMin   int      `json:"priceMin"`
	PriceMax   int      `json:"priceMax"`
	Date       string   `json:"date"` // YYYY-MM-DD, empty = any
	TimeSlot   string   `json:"timeSlot"`
	MinRating  float64  `json:"minRating"`
	Experience string   `json:"experience"`
	Equipment  []string `json:"equipment"`
	EventType  string   `json:"eventType"`
}

const (
	DefaultRadius   = 50
	DefaultPriceMin = 0
	DefaultPriceMax = 5000

	AnyTimeSlot   = "any"
	AnyExperience = "any"
	AnyEventType  = "any"

	MinRadius = 5
	MaxRadius = 100
)

// DefaultFilters returns the documented defaults for every dimension.
func DefaultFilters() Filters {
	return Filters{
		Radius:     DefaultRadius,
		PriceMin:   DefaultPriceMin,
		PriceMax:   DefaultPriceMax,
		TimeSlot:   AnyTimeSlot,
		Experience: AnyExperience,
		EventType:  AnyEventType,
	}
}
