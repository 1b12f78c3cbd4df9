package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDirectory maps listing ids to the accounts behind them.
type fakeDirectory map[string]string

func (f fakeDirectory) Exists(id string) bool {
	_, ok := f[id]
	return ok
}

func (f fakeDirectory) Owner(id string) (string, bool) {
	owner, ok := f[id]
	if !ok || owner == "" {
		return "", false
	}
	return owner, true
}

func validSpec() Spec {
	return Spec{
		DJID:      "dj-1",
		EventType: "wedding",
		Date:      "2026-10-01",
		TimeSlot:  "evening",
		Venue:     "The Grand Hall",
		Message:   "Looking forward to it",
	}
}

func newTestBookingStore() *Store {
	return NewStore(fakeDirectory{"dj-1": "user-dj-1"}, nil)
}

func TestSubmit(t *testing.T) {
	s := newTestBookingStore()

	req, err := s.Submit(context.Background(), "org-1", validSpec())
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, StatusPending, req.Status)
	assert.Equal(t, "org-1", req.OrganizerID)
	assert.Equal(t, "user-dj-1", req.DJUserID, "listing resolved to its account")
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
	}{
		{"Unknown DJ", func(sp *Spec) { sp.DJID = "ghost" }},
		{"Empty DJ", func(sp *Spec) { sp.DJID = "" }},
		{"Bad Date", func(sp *Spec) { sp.Date = "next friday" }},
		{"Empty Date", func(sp *Spec) { sp.Date = "" }},
		{"Unknown Event Type", func(sp *Spec) { sp.EventType = "rave" }},
		{"Unknown Time Slot", func(sp *Spec) { sp.TimeSlot = "dawn" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestBookingStore()
			sp := validSpec()
			tt.mutate(&sp)

			_, err := s.Submit(context.Background(), "org-1", sp)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, s.All(), "failed submit must not record anything")
		})
	}
}

func TestSubmitDefaultsTimeSlot(t *testing.T) {
	s := newTestBookingStore()
	sp := validSpec()
	sp.TimeSlot = ""

	req, err := s.Submit(context.Background(), "org-1", sp)
	require.NoError(t, err)
	assert.Equal(t, "any", req.TimeSlot)
}

func TestRespond(t *testing.T) {
	s := newTestBookingStore()
	req, err := s.Submit(context.Background(), "org-1", validSpec())
	require.NoError(t, err)

	got, err := s.Respond(context.Background(), req.ID, true)
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, got.Status)

	got, err = s.Respond(context.Background(), req.ID, false)
	require.NoError(t, err)
	assert.Equal(t, StatusDeclined, got.Status)

	_, err = s.Respond(context.Background(), "missing", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVisibility(t *testing.T) {
	s := NewStore(fakeDirectory{"dj-1": "user-dj-1", "dj-2": "user-dj-2"}, nil)

	sp := validSpec()
	_, err := s.Submit(context.Background(), "org-1", sp)
	require.NoError(t, err)

	sp2 := validSpec()
	sp2.DJID = "dj-2"
	_, err = s.Submit(context.Background(), "org-2", sp2)
	require.NoError(t, err)

	assert.Len(t, s.For("org-1"), 1)
	assert.Len(t, s.For("user-dj-2"), 1, "addressed DJ sees the request via their account id")
	assert.Empty(t, s.For("dj-2"), "listing ids are not account ids")
	assert.Empty(t, s.For("stranger"))
	assert.Len(t, s.All(), 2)
}

func TestOwnerIsTheAddressedAccount(t *testing.T) {
	s := newTestBookingStore()
	req, err := s.Submit(context.Background(), "org-1", validSpec())
	require.NoError(t, err)

	owner, ok := s.Owner(req.ID)
	require.True(t, ok)
	assert.Equal(t, "user-dj-1", owner)

	_, ok = s.Owner("missing")
	assert.False(t, ok)
}

func TestOwnerUnlinkedListing(t *testing.T) {
	s := NewStore(fakeDirectory{"dj-9": ""}, nil)
	sp := validSpec()
	sp.DJID = "dj-9"
	req, err := s.Submit(context.Background(), "org-1", sp)
	require.NoError(t, err)

	_, ok := s.Owner(req.ID)
	assert.False(t, ok, "requests for unlinked listings resolve to nobody")
}
