package catalog

import "strings"

// Apply returns the subsequence of djs matching the search term and every
// active filter dimension (logical AND). It is pure: the input slice is
// never mutated and catalog order is preserved.
//
// Price range, equipment, experience level, event type and time slot are
// collected by the UI and counted by ActiveCount, but are deliberately not
// applied here: catalog records carry no matching attributes yet. Extending
// the record schema and the predicate set together is a separate decision.
func Apply(djs []DJ, term string, f Filters) []DJ {
	out := []DJ{}
	for _, d := range djs {
		if matchesSearch(d, term) &&
			matchesGenres(d, f.Genres) &&
			matchesCity(d, f.City) &&
			matchesRating(d, f.MinRating) &&
			matchesAvailability(d, f.Date) {
			out = append(out, d)
		}
	}
	return out
}

func matchesSearch(d DJ, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(d.Name), term) {
		return true
	}
	for _, g := range d.Genres {
		if strings.Contains(strings.ToLower(g), term) {
			return true
		}
	}
	return false
}

func matchesGenres(d DJ, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		for _, have := range d.Genres {
			if strings.EqualFold(want, have) {
				return true
			}
		}
	}
	return false
}

func matchesCity(d DJ, city string) bool {
	city = strings.TrimSpace(city)
	if city == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.City), strings.ToLower(city))
}

func matchesRating(d DJ, min float64) bool {
	if min == 0 {
		return true
	}
	return d.Rating >= min
}

// matchesAvailability only checks the static availability flag when a date
// is requested. The date itself is never compared against a calendar.
func matchesAvailability(d DJ, date string) bool {
	if date == "" {
		return true
	}
	return d.Available
}

// ActiveCount reports how many filter dimensions differ from their
// defaults, for the UI badge. It must be recomputed on every change.
func ActiveCount(term string, f Filters) int {
	n := 0
	if strings.TrimSpace(term) != "" {
		n++
	}
	if strings.TrimSpace(f.City) != "" {
		n++
	}
	if len(f.Genres) > 0 {
		n++
	}
	if f.PriceMin != DefaultPriceMin || f.PriceMax != DefaultPriceMax {
		n++
	}
	if f.Date != "" {
		n++
	}
	if f.MinRating > 0 {
		n++
	}
	if f.Experience != "" && f.Experience != AnyExperience {
		n++
	}
	if len(f.Equipment) > 0 {
		n++
	}
	if f.EventType != "" && f.EventType != AnyEventType {
		n++
	}
	return n
}

// ClampRadius mirrors the UI slider bounds.
func ClampRadius(r int) int {
	if r < MinRadius {
		return MinRadius
	}
	if r > MaxRadius {
		return MaxRadius
	}
	return r
}
