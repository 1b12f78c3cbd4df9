// Package booking handles booking requests from organizers to DJs. Requests
// live in memory alongside the rest of the demo state.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ichigoyakuza/findmydjapp-sub001/internal/events"
)

var (
	ErrNotFound   = errors.New("booking not found")
	ErrValidation = errors.New("validation failed")
)

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

var validEventTypes = map[string]bool{
	"wedding":   true,
	"corporate": true,
	"club":      true,
	"festival":  true,
	"private":   true,
}

var validTimeSlots = map[string]bool{
	"any":       true,
	"afternoon": true,
	"evening":   true,
	"night":     true,
}

// Request is a booking inquiry sent by an organizer to a DJ. DJID names
// the catalog listing being booked; DJUserID is the account behind it,
// resolved at submit time, and is the party allowed to respond.
type Request struct {
	ID          string    `json:"id"`
	DJID        string    `json:"djId"`
	DJUserID    string    `json:"djUserId,omitempty"`
	OrganizerID string    `json:"organizerId"`
	EventType   string    `json:"eventType"`
	Date        string    `json:"date"` // YYYY-MM-DD
	TimeSlot    string    `json:"timeSlot"`
	Venue       string    `json:"venue"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Spec carries the caller-supplied fields for Submit.
type Spec struct {
	DJID      string `json:"djId"`
	EventType string `json:"eventType"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
	Venue     string `json:"venue"`
	Message   string `json:"message"`
}

// DJDirectory resolves DJ listings and the accounts behind them.
type DJDirectory interface {
	Exists(id string) bool
	Owner(id string) (string, bool)
}

type Store struct {
	mu       sync.Mutex
	requests []Request
	djs      DJDirectory
	pub      events.Publisher
}

func NewStore(djs DJDirectory, pub events.Publisher) *Store {
	return &Store{djs: djs, pub: pub}
}

// Submit validates and records a new pending booking request.
func (s *Store) Submit(ctx context.Context, organizerID string, spec Spec) (Request, error) {
	spec.Venue = strings.TrimSpace(spec.Venue)
	spec.Message = strings.TrimSpace(spec.Message)

	if spec.DJID == "" || !s.djs.Exists(spec.DJID) {
		return Request{}, fmt.Errorf("%w: unknown dj", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", spec.Date); err != nil {
		return Request{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if spec.TimeSlot == "" {
		spec.TimeSlot = "any"
	}
	if !validTimeSlots[spec.TimeSlot] {
		return Request{}, fmt.Errorf("%w: unknown time slot %q", ErrValidation, spec.TimeSlot)
	}
	if !validEventTypes[spec.EventType] {
		return Request{}, fmt.Errorf("%w: unknown event type %q", ErrValidation, spec.EventType)
	}
	if len(spec.Message) > 1000 {
		return Request{}, fmt.Errorf("%w: message is too long", ErrValidation)
	}

	djUserID, _ := s.djs.Owner(spec.DJID)

	req := Request{
		ID:          uuid.NewString(),
		DJID:        spec.DJID,
		DJUserID:    djUserID,
		OrganizerID: organizerID,
		EventType:   spec.EventType,
		Date:        spec.Date,
		TimeSlot:    spec.TimeSlot,
		Venue:       spec.Venue,
		Message:     spec.Message,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.requests = append([]Request{req}, s.requests...)
	s.mu.Unlock()

	s.publish(ctx, "booking.created", req)
	return req, nil
}

// Respond lets the DJ (or an admin) accept or decline a pending request.
func (s *Store) Respond(ctx context.Context, id string, accept bool) (Request, error) {
	status := StatusDeclined
	if accept {
		status = StatusAccepted
	}

	s.mu.Lock()
	var updated *Request
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].Status = status
			r := s.requests[i]
			updated = &r
			break
		}
	}
	s.mu.Unlock()

	if updated == nil {
		return Request{}, ErrNotFound
	}
	s.publish(ctx, "booking.responded", *updated)
	return *updated, nil
}

// For returns the requests visible to a user: ones they sent or received.
func (s *Store) For(userID string) []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []Request{}
	for _, r := range s.requests {
		if r.OrganizerID == userID || (r.DJUserID != "" && r.DJUserID == userID) {
			out = append(out, r)
		}
	}
	return out
}

// All returns every request (admin view).
func (s *Store) All() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request{}, s.requests...)
}

// Owner reports the account a request is addressed to, so respond
// permission checks scope to the one DJ who may answer it. Requests whose
// listing has no linked account resolve to nobody.
func (s *Store) Owner(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.ID == id {
			if r.DJUserID == "" {
				return "", false
			}
			return r.DJUserID, true
		}
	}
	return "", false
}

func (s *Store) publish(ctx context.Context, typ string, payload any) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(ctx, events.Event{Type: typ, Payload: payload}); err != nil {
		log.Printf("findmydj: publish %s: %v", typ, err)
	}
}
