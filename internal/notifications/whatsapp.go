package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// WhatsAppSender delivers notification events as WhatsApp text messages
// through an HTTP gateway. With an empty API URL it only logs the rendered
// message, which keeps local development working without credentials.
type WhatsAppSender struct {
	apiURL string
	apiKey string
	client *http.Client
}

// NewWhatsAppSender builds a sender for the given gateway.
func NewWhatsAppSender(apiURL, apiKey string) *WhatsAppSender {
	return &WhatsAppSender{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type whatsAppMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// Send renders the event's template and posts it to the gateway. Events
// without a customer phone are skipped silently.
func (s *WhatsAppSender) Send(ctx context.Context, event domain.NotificationEvent) error {
	if event.CustomerPhone == "" {
		return nil
	}

	body := RenderMessage(event)
	if body == "" {
		slog.Warn("Skipping notification with unknown kind", "kind", event.Kind)
		return nil
	}

	if s.apiURL == "" {
		slog.Info("WhatsApp gateway not configured, logging message instead",
			"phone", event.CustomerPhone, "body", body)
		return nil
	}

	payload, err := json.Marshal(whatsAppMessage{To: event.CustomerPhone, Body: body})
	if err != nil {
		return fmt.Errorf("failed to marshal whatsapp message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call whatsapp gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// RenderMessage builds the customer-facing text for an event. Unknown kinds
// render to the empty string.
func RenderMessage(event domain.NotificationEvent) string {
	name := event.CustomerName
	if name == "" {
		name = "Hola"
	} else {
		name = "Hola " + name
	}

	switch event.Kind {
	case domain.NotifyOrderPaid:
		msg := fmt.Sprintf("%s! Recibimos tu pago de $%s y tu pedido ya está en preparación.", name, event.Amount)
		if event.PointsEarned > 0 {
			msg += fmt.Sprintf(" Ganaste %d puntos de fidelidad.", event.PointsEarned)
		}
		return msg
	case domain.NotifyOrderReady:
		return fmt.Sprintf("%s! Tu pedido está listo. Puedes pasar a recogerlo.", name)
	case domain.NotifyReservationConfirmed:
		return fmt.Sprintf("%s! Tu reserva quedó confirmada. Te esperamos.", name)
	default:
		return ""
	}
}
