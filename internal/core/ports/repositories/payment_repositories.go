package repositories

import (
	"context"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// FindPaymentByGatewayTransactionID retrieves the payment recorded for a
	// gateway transaction, used to make webhook processing idempotent.
	FindPaymentByGatewayTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)

	// ListPaymentsByOrder retrieves the payments recorded against an order.
	ListPaymentsByOrder(ctx context.Context, orderID string) ([]domain.Payment, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces.
// Writes go through OrderPaymentSupport so settlement stays atomic.
type PaymentRepositoryFacade interface {
	PaymentReader
}
