package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchResponse struct {
	Items         []DJ `json:"items"`
	Total         int  `json:"total"`
	ActiveFilters int  `json:"activeFilters"`
}

func doSearch(t *testing.T, srv *Server, target string) (*httptest.ResponseRecorder, searchResponse) {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	var body searchResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestHandleSearch(t *testing.T) {
	srv := NewServer(NewDemoCatalog(0))

	t.Run("Full Catalog By Default", func(t *testing.T) {
		w, body := doSearch(t, srv, "/djs")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 6, body.Total)
		assert.Equal(t, 0, body.ActiveFilters)
	})

	t.Run("Query Filters By Name", func(t *testing.T) {
		w, body := doSearch(t, srv, "/djs?query=bass")
		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, body.Items, 1)
		assert.Equal(t, "Bass Master", body.Items[0].Name)
		assert.Equal(t, 1, body.ActiveFilters)
	})

	t.Run("Structured Filters Combine", func(t *testing.T) {
		w, body := doSearch(t, srv, "/djs?city=miami&minRating=4.5")
		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, body.Items, 1)
		assert.Equal(t, "DJ Nexus", body.Items[0].Name)
		assert.Equal(t, 2, body.ActiveFilters)
	})

	t.Run("Malformed Numbers Degrade To Defaults", func(t *testing.T) {
		w, body := doSearch(t, srv, "/djs?minRating=abc&priceMin=xyz&priceMax=-")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 6, body.Total)
		assert.Equal(t, 0, body.ActiveFilters)
	})

	t.Run("Genres Are Comma Separated", func(t *testing.T) {
		w, body := doSearch(t, srv, "/djs?genres=House,Trap")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, body.Total) // Nexus, Bass Master, Vinyl Vince
	})

	t.Run("Date Drops Unavailable DJs", func(t *testing.T) {
		w, body := doSearch(t, srv, "/djs?date=2026-10-01")
		assert.Equal(t, http.StatusOK, w.Code)
		for _, d := range body.Items {
			assert.True(t, d.Available)
		}
	})

	t.Run("Query Too Long", func(t *testing.T) {
		long := make([]byte, 201)
		for i := range long {
			long[i] = 'a'
		}
		w, _ := doSearch(t, srv, "/djs?query="+string(long))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleSearchWhileLoading(t *testing.T) {
	srv := NewServer(NewDemoCatalog(time.Minute))

	w, _ := doSearch(t, srv, "/djs")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleGetDJ(t *testing.T) {
	srv := NewServer(NewDemoCatalog(0))

	t.Run("Found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/djs/dj-1", nil)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var dj DJ
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dj))
		assert.Equal(t, "DJ Nexus", dj.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/djs/nope", nil)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCatalogOwner(t *testing.T) {
	c := NewDemoCatalog(0)

	owner, ok := c.Owner("dj-1")
	require.True(t, ok)
	assert.Equal(t, "user-dj-1", owner)

	_, ok = c.Owner("dj-2")
	assert.False(t, ok, "unlinked listings resolve to nobody")

	_, ok = c.Owner("nope")
	assert.False(t, ok)
}
