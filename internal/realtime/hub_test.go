package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// testClient builds a client without a real websocket connection.
func testClient(hub *Hub, restaurantID string) *Client {
	return &Client{
		hub:          hub,
		restaurantID: restaurantID,
		send:         make(chan []byte, 256),
	}
}

func TestHubRegisterAndUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	restaurantID := uuid.NewString()
	client := testClient(hub, restaurantID)

	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	assert.True(t, hub.rooms[restaurantID][client], "client should be in the restaurant room")
	hub.mu.RUnlock()

	hub.unregister <- client
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	assert.Nil(t, hub.rooms[restaurantID], "empty room should be removed")
	hub.mu.RUnlock()
}

func TestBroadcastChangeReachesOnlyOwnRestaurant(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	restaurantA := uuid.NewString()
	restaurantB := uuid.NewString()

	clientA := testClient(hub, restaurantA)
	clientB := testClient(hub, restaurantB)

	hub.register <- clientA
	hub.register <- clientB
	time.Sleep(10 * time.Millisecond)

	hub.BroadcastChange(domain.ChangeEvent{
		Table:        "orders",
		Op:           domain.ChangeInsert,
		RestaurantID: restaurantA,
		RecordID:     "order-1",
		OccurredAt:   time.Now(),
	})

	select {
	case msg := <-clientA.send:
		var event domain.ChangeEvent
		require.NoError(t, json.Unmarshal(msg, &event))
		assert.Equal(t, "orders", event.Table)
		assert.Equal(t, domain.ChangeInsert, event.Op)
		assert.Equal(t, "order-1", event.RecordID)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("client in the event's restaurant did not receive it")
	}

	select {
	case <-clientB.send:
		t.Fatal("client in another restaurant must not receive the event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBroadcastChangeFansOutWithinRestaurant(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	restaurantID := uuid.NewString()
	clients := []*Client{
		testClient(hub, restaurantID),
		testClient(hub, restaurantID),
		testClient(hub, restaurantID),
	}
	for _, c := range clients {
		hub.register <- c
	}
	time.Sleep(10 * time.Millisecond)

	hub.BroadcastChange(domain.ChangeEvent{
		Table:        "cash_movements",
		Op:           domain.ChangeInsert,
		RestaurantID: restaurantID,
		RecordID:     "mov-7",
		OccurredAt:   time.Now(),
	})

	for i, c := range clients {
		select {
		case msg := <-c.send:
			var event domain.ChangeEvent
			require.NoError(t, json.Unmarshal(msg, &event))
			assert.Equal(t, "cash_movements", event.Table)
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("client %d did not receive the event", i)
		}
	}
}

func TestBroadcastChangeToEmptyRoomIsANoop(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	restaurantID := uuid.NewString()
	client := testClient(hub, restaurantID)
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	hub.BroadcastChange(domain.ChangeEvent{
		Table:        "orders",
		Op:           domain.ChangeUpdate,
		RestaurantID: uuid.NewString(),
		RecordID:     "order-9",
		OccurredAt:   time.Now(),
	})

	select {
	case <-client.send:
		t.Fatal("event for an unknown restaurant must not reach other rooms")
	case <-time.After(50 * time.Millisecond):
	}
}
