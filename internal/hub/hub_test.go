package hub

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesSubscribers(t *testing.T) {
	h := New()
	a := make(Client, 1)
	b := make(Client, 1)
	h.Subscribe(a)
	h.Subscribe(b)

	h.Broadcast(Event{Type: EventGamesChanged})

	for _, c := range []Client{a, b} {
		msg := <-c
		var got Event
		require.NoError(t, json.Unmarshal(msg, &got))
		assert.Equal(t, EventGamesChanged, got.Type)
	}
}

func TestBroadcastDoesNotBlockOnFullClient(t *testing.T) {
	h := New()
	full := make(Client)
	h.Subscribe(full)

	h.Broadcast(Event{Type: EventStudiosChanged})
	assert.Equal(t, 1, h.Len())
}

func TestUnsubscribeClosesClient(t *testing.T) {
	h := New()
	c := make(Client, 1)
	h.Subscribe(c)

	h.Unsubscribe(c)
	h.Unsubscribe(c)

	_, ok := <-c
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
}
