package booking

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ichigoyakuza/findmydjapp-sub001/internal/authz"
)

func doRequest(t *testing.T, router http.Handler, method, target string, body any, viewer *authz.Context) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if viewer != nil {
		req = req.WithContext(authz.WithViewer(req.Context(), *viewer))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type permFunc func(resource, action, resourceID string) bool

func (f permFunc) HasPermission(resource, action, resourceID string) bool {
	return f(resource, action, resourceID)
}

// grants mirrors the session layer's role grant table.
func grants(pairs ...string) authz.PermissionChecker {
	set := map[string]bool{}
	for _, p := range pairs {
		set[p] = true
	}
	return permFunc(func(resource, action, _ string) bool {
		return set[resource+":"+action]
	})
}

func organizerViewer(id string) authz.Context {
	return authz.Context{
		Authenticated: true,
		UserID:        id,
		Role:          authz.RoleOrganizer,
		Permissions:   grants("booking:create"),
	}
}

// djViewer mirrors the session layer: DJs hold no blanket respond grant,
// only ownership of requests addressed to their account.
func djViewer(s *Store, id string) authz.Context {
	return authz.Context{
		Authenticated: true,
		UserID:        id,
		Role:          authz.RoleDJ,
		Permissions: permFunc(func(resource, action, resourceID string) bool {
			if resourceID == "" {
				return false
			}
			owner, ok := s.Owner(resourceID)
			return ok && owner == id
		}),
	}
}

func adminViewer(id string) authz.Context {
	return authz.Context{
		Authenticated: true,
		UserID:        id,
		Role:          authz.RoleAdmin,
		Permissions:   permFunc(func(string, string, string) bool { return true }),
	}
}

func TestHandleCreateBooking(t *testing.T) {
	store := newTestBookingStore()
	router := NewServer(store).Router()

	t.Run("Organizer Creates", func(t *testing.T) {
		v := organizerViewer("org-1")
		w := doRequest(t, router, "POST", "/bookings", validSpec(), &v)
		require.Equal(t, http.StatusCreated, w.Code)

		var req Request
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &req))
		assert.Equal(t, StatusPending, req.Status)
	})

	t.Run("Guest Denied With Notice", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/bookings", validSpec(), nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		var notice authz.Notice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notice))
		assert.Equal(t, authz.NoticeFor(authz.DenialAuthRequired), notice)
	})

	t.Run("DJ Role Denied", func(t *testing.T) {
		v := djViewer(store, "user-dj-1")
		w := doRequest(t, router, "POST", "/bookings", validSpec(), &v)
		require.Equal(t, http.StatusForbidden, w.Code)

		var notice authz.Notice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notice))
		assert.Equal(t, authz.NoticeFor(authz.DenialRoleNotPermitted), notice)
	})

	t.Run("Admin Bypasses Role Check", func(t *testing.T) {
		v := adminViewer("admin-1")
		w := doRequest(t, router, "POST", "/bookings", validSpec(), &v)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Validation Error", func(t *testing.T) {
		v := organizerViewer("org-1")
		sp := validSpec()
		sp.EventType = "rave"
		w := doRequest(t, router, "POST", "/bookings", sp, &v)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleListBookings(t *testing.T) {
	store := newTestBookingStore()
	router := NewServer(store).Router()

	v := organizerViewer("org-1")
	w := doRequest(t, router, "POST", "/bookings", validSpec(), &v)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("Own Bookings", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/bookings", nil, &v)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Bookings []Request `json:"bookings"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Bookings, 1)
	})

	t.Run("Stranger Sees Nothing", func(t *testing.T) {
		other := organizerViewer("org-2")
		w := doRequest(t, router, "GET", "/bookings", nil, &other)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Bookings []Request `json:"bookings"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Empty(t, body.Bookings)
	})

	t.Run("Addressed DJ Sees The Request", func(t *testing.T) {
		dj := djViewer(store, "user-dj-1")
		w := doRequest(t, router, "GET", "/bookings", nil, &dj)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Bookings []Request `json:"bookings"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Bookings, 1)
	})

	t.Run("Admin Sees All", func(t *testing.T) {
		admin := adminViewer("admin-1")
		w := doRequest(t, router, "GET", "/bookings", nil, &admin)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Bookings []Request `json:"bookings"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Bookings, 1)
	})
}

func TestHandleRespond(t *testing.T) {
	store := newTestBookingStore()
	router := NewServer(store).Router()

	v := organizerViewer("org-1")
	w := doRequest(t, router, "POST", "/bookings", validSpec(), &v)
	require.Equal(t, http.StatusCreated, w.Code)
	var created Request
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	dj := djViewer(store, "user-dj-1")

	t.Run("Addressed DJ Accepts", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/bookings/"+created.ID+"/respond", map[string]any{"accept": true}, &dj)
		require.Equal(t, http.StatusOK, w.Code)

		var got Request
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, StatusAccepted, got.Status)
	})

	t.Run("Unrelated DJ Cannot Respond", func(t *testing.T) {
		other := djViewer(store, "user-dj-2")
		w := doRequest(t, router, "POST", "/bookings/"+created.ID+"/respond", map[string]any{"accept": true}, &other)
		require.Equal(t, http.StatusForbidden, w.Code)

		var notice authz.Notice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notice))
		assert.Equal(t, authz.NoticeFor(authz.DenialPermissionDenied), notice)

		owner, ok := store.Owner(created.ID)
		require.True(t, ok)
		assert.Equal(t, "user-dj-1", owner, "request still addressed to the original DJ")
	})

	t.Run("Organizer Cannot Respond", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/bookings/"+created.ID+"/respond", map[string]any{"accept": true}, &v)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Unknown Booking", func(t *testing.T) {
		// Ownership cannot resolve for an unknown id, so the guard denies
		// before the store is consulted.
		w := doRequest(t, router, "POST", "/bookings/missing/respond", map[string]any{"accept": true}, &dj)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin Responds To Any Booking", func(t *testing.T) {
		admin := adminViewer("admin-1")
		w := doRequest(t, router, "POST", "/bookings/"+created.ID+"/respond", map[string]any{"accept": false}, &admin)
		require.Equal(t, http.StatusOK, w.Code)

		var got Request
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, StatusDeclined, got.Status)
	})
}
