package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// Hub maintains the set of connected clients grouped by restaurant and fans
// change events out to them. It satisfies the ChangeBroadcaster port so
// services can publish without knowing about websockets.
type Hub struct {
	// Registered clients keyed by restaurant ID
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan domain.ChangeEvent

	mu sync.RWMutex
}

// NewHub creates a hub. Call Run in its own goroutine before serving clients.
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan domain.ChangeEvent, 256),
	}
}

// Run processes registrations and broadcasts until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.restaurantID] == nil {
				h.rooms[client.restaurantID] = make(map[*Client]bool)
			}
			h.rooms[client.restaurantID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.restaurantID]; ok {
				if _, exists := clients[client]; exists {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.rooms, client.restaurantID)
					}
				}
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			message, err := json.Marshal(event)
			if err != nil {
				slog.Error("Failed to marshal change event", "table", event.Table, "error", err)
				continue
			}

			h.mu.Lock()
			for client := range h.rooms[event.RestaurantID] {
				select {
				case client.send <- message:
				default:
					// Slow consumer, drop it rather than block the hub
					close(client.send)
					delete(h.rooms[event.RestaurantID], client)
					if len(h.rooms[event.RestaurantID]) == 0 {
						delete(h.rooms, event.RestaurantID)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastChange queues an event for every client watching the event's
// restaurant. It never blocks the caller; if the hub's queue is full the
// event is dropped.
func (h *Hub) BroadcastChange(event domain.ChangeEvent) {
	select {
	case h.broadcast <- event:
	default:
		slog.Warn("Realtime broadcast queue full, dropping event", "table", event.Table, "restaurantID", event.RestaurantID)
	}
}
