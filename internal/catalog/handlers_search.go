package catalog

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !s.catalog.Ready() {
		writeError(w, http.StatusServiceUnavailable, "catalog is loading")
		return
	}

	term := strings.TrimSpace(r.URL.Query().Get("query"))
	if len(term) > 200 {
		writeError(w, http.StatusBadRequest, "query is too long")
		return
	}

	f := filtersFromQuery(r.URL.Query())

	items := Apply(s.catalog.All(), term, f)
	writeJSON(w, http.StatusOK, map[string]any{
		"items":         items,
		"total":         len(items),
		"activeFilters": ActiveCount(term, f),
	})
}

func (s *Server) handleGetDJ(w http.ResponseWriter, r *http.Request) {
	if !s.catalog.Ready() {
		writeError(w, http.StatusServiceUnavailable, "catalog is loading")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing dj id")
		return
	}

	dj, ok := s.catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "dj not found")
		return
	}
	writeJSON(w, http.StatusOK, dj)
}

// filtersFromQuery builds Filters from query params, starting from the
// documented defaults. Malformed numeric input degrades to the default for
// that field rather than failing the request.
func filtersFromQuery(q url.Values) Filters {
	f := DefaultFilters()

	if v := strings.TrimSpace(q.Get("city")); v != "" {
		f.City = v
	}
	if v := q.Get("radius"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Radius = ClampRadius(n)
		}
	}
	if v := q.Get("genres"); v != "" {
		f.Genres = splitList(v)
	}
	if v := q.Get("priceMin"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			f.PriceMin = n
		}
	}
	if v := q.Get("priceMax"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			f.PriceMax = n
		}
	}
	if v := strings.TrimSpace(q.Get("date")); v != "" {
		f.Date = v
	}
	if v := strings.TrimSpace(q.Get("timeSlot")); v != "" {
		f.TimeSlot = v
	}
	if v := q.Get("minRating"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 0 && n <= 5 {
			f.MinRating = n
		}
	}
	if v := strings.TrimSpace(q.Get("experience")); v != "" {
		f.Experience = v
	}
	if v := q.Get("equipment"); v != "" {
		f.Equipment = splitList(v)
	}
	if v := strings.TrimSpace(q.Get("eventType")); v != "" {
		f.EventType = v
	}

	return f
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
