package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

func TestRenderMessage_OrderPaidIncludesPoints(t *testing.T) {
	msg := RenderMessage(domain.NotificationEvent{
		Kind:         domain.NotifyOrderPaid,
		CustomerName: "Laura",
		Amount:       "42000",
		PointsEarned: 42,
	})

	assert.Contains(t, msg, "Hola Laura")
	assert.Contains(t, msg, "$42000")
	assert.Contains(t, msg, "42 puntos")
}

func TestRenderMessage_OrderPaidWithoutPoints(t *testing.T) {
	msg := RenderMessage(domain.NotificationEvent{
		Kind:   domain.NotifyOrderPaid,
		Amount: "15000",
	})

	assert.Contains(t, msg, "$15000")
	assert.NotContains(t, msg, "puntos")
}

func TestRenderMessage_UnknownKindIsEmpty(t *testing.T) {
	msg := RenderMessage(domain.NotificationEvent{Kind: "order.exploded"})
	assert.Empty(t, msg)
}

func TestSend_PostsToGateway(t *testing.T) {
	var got whatsAppMessage
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewWhatsAppSender(server.URL, "secret-key")
	err := sender.Send(context.Background(), domain.NotificationEvent{
		Kind:          domain.NotifyOrderReady,
		CustomerName:  "Pedro",
		CustomerPhone: "+573001112233",
		OccurredAt:    time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-key", auth)
	assert.Equal(t, "+573001112233", got.To)
	assert.Contains(t, got.Body, "listo")
}

func TestSend_GatewayErrorIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	sender := NewWhatsAppSender(server.URL, "")
	err := sender.Send(context.Background(), domain.NotificationEvent{
		Kind:          domain.NotifyReservationConfirmed,
		CustomerPhone: "+573001112233",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSend_SkipsEventsWithoutPhone(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	sender := NewWhatsAppSender(server.URL, "")
	err := sender.Send(context.Background(), domain.NotificationEvent{Kind: domain.NotifyOrderReady})

	require.NoError(t, err)
	assert.False(t, called)
}
