package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPublisher(t *testing.T) {
	p := NewMemoryPublisher(3)
	ctx := context.Background()

	for _, typ := range []string{"a", "b", "c", "d"} {
		require.NoError(t, p.Publish(ctx, Event{Type: typ}))
	}

	got := p.Events()
	require.Len(t, got, 3, "oldest events are dropped past the limit")
	assert.Equal(t, "b", got[0].Type)
	assert.Equal(t, "d", got[2].Type)

	assert.NoError(t, p.Close())
}

func TestMemoryPublisherEventsIsACopy(t *testing.T) {
	p := NewMemoryPublisher(10)
	require.NoError(t, p.Publish(context.Background(), Event{Type: "a"}))

	got := p.Events()
	got[0].Type = "mutated"
	assert.Equal(t, "a", p.Events()[0].Type)
}
