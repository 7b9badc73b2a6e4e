package hub

import (
	"encoding/json"
	"sync"
)

// Event types broadcast after a successful mutation. Clients react by
// re-reading the whole collection named in the type.
const (
	EventStudiosChanged     = "studios.changed"
	EventGamesChanged       = "games.changed"
	EventPreferencesChanged = "preferences.changed"
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Client is a single subscriber. The SSE handler drains it.
type Client chan []byte

// Hub fans catalog change events out to every subscribed client.
type Hub struct {
	clients map[Client]bool
	mu      sync.RWMutex
}

// New creates an empty Hub.
func New() *Hub {
	return &Hub{
		clients: make(map[Client]bool),
	}
}

func (h *Hub) Subscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
}

// Unsubscribe removes a client and closes its channel.
func (h *Hub) Unsubscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client)
	}
}

// Len reports the number of subscribed clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends an event to every client. A client whose buffer is full
// misses the event rather than blocking the publisher.
func (h *Hub) Broadcast(event Event) {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client <- messageBytes:
		default:
		}
	}
}
