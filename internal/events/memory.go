package events

import (
	"context"
	"sync"
)

// MemoryPublisher keeps the most recent events in memory. It backs
// redis-less deployments and serves as a spy in tests.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
	limit  int
}

func NewMemoryPublisher(limit int) *MemoryPublisher {
	if limit <= 0 {
		limit = 100
	}
	return &MemoryPublisher{limit: limit}
}

func (p *MemoryPublisher) Publish(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	if len(p.events) > p.limit {
		p.events = p.events[len(p.events)-p.limit:]
	}
	return nil
}

// Events returns a copy of the recorded events in publish order.
func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}

func (p *MemoryPublisher) Close() error {
	return nil
}
