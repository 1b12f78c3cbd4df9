// Package events carries mutation events out of the stores. The publisher
// is an explicit dependency injected at startup and closed at shutdown;
// nothing registers itself globally.
package events

import "context"

// Event is a mutation notification, e.g. {"playlist.created", payload}.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Publisher delivers events to interested listeners. Implementations must
// be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
