package hub

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRecommendations(t *testing.T) {
	srv := NewServer()

	req := httptest.NewRequest("GET", "/hub/recommendations", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Recommendations, 3)
	for _, rec := range body.Recommendations {
		assert.NotEmpty(t, rec.ID)
		assert.NotEmpty(t, rec.Title)
		assert.NotEmpty(t, rec.Tracks)
	}
}
