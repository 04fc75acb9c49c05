package services

import (
	"context"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/sazonapp/pos_backend/internal/dto"
)

// PaymentSvcFacade defines operations for settling orders.
type PaymentSvcFacade interface {
	// ProcessOrderPayment settles an order at the counter. Cash payments
	// require the cashier to have an open cashbox session and append a SALE
	// movement to its ledger atomically with the order status flip.
	ProcessOrderPayment(ctx context.Context, user *domain.User, orderID string, req dto.PayOrderRequest) (*domain.Order, *domain.Payment, error)

	// ProcessGatewayEvent applies a verified gateway webhook event: it
	// resolves the order from the payment reference and advances it per the
	// transaction status. Unknown transaction IDs already recorded are
	// ignored so gateway redeliveries stay idempotent.
	ProcessGatewayEvent(ctx context.Context, event dto.WompiEvent) error

	// VerifyEventSignature checks the webhook HMAC signature for the event.
	VerifyEventSignature(event dto.WompiEvent, timestamp string, signature string) bool
}

// NotificationPublisher publishes customer notification events to the broker.
// Implementations must be safe for concurrent use.
type NotificationPublisher interface {
	PublishNotification(ctx context.Context, event domain.NotificationEvent) error
}

// ChangeBroadcaster fans change events out to realtime subscribers.
type ChangeBroadcaster interface {
	BroadcastChange(event domain.ChangeEvent)
}
