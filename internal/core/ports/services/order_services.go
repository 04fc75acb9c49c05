package services

import (
	"context"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/sazonapp/pos_backend/internal/dto"
)

// OrderSvcFacade defines operations for the order lifecycle.
type OrderSvcFacade interface {
	// CreateOrder creates a staff order at the counter. POS orders start in
	// pending for the kitchen.
	CreateOrder(ctx context.Context, user *domain.User, req dto.CreateOrderRequest) (*domain.Order, error)

	// CreateOnlineOrder creates a customer order against the restaurant slug.
	// Online orders start in pending_payment and await the gateway webhook.
	CreateOnlineOrder(ctx context.Context, slug string, req dto.CreateOnlineOrderRequest) (*domain.Order, error)

	// CreateTableOrder creates a dine-in order from a table QR token.
	CreateTableOrder(ctx context.Context, req dto.CreateTableOrderRequest) (*domain.Order, error)

	// GetOrder retrieves an order with its items.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders retrieves a paginated order history, optionally by status.
	ListOrders(ctx context.Context, restaurantID string, status domain.OrderStatus, limit, offset int) ([]domain.Order, error)

	// ListKitchenOrders retrieves the active kitchen board, oldest first.
	ListKitchenOrders(ctx context.Context, restaurantID string) ([]domain.Order, error)

	// AdvanceOrder moves an order along the status machine. Illegal
	// transitions fail with ErrConflict.
	AdvanceOrder(ctx context.Context, user *domain.User, orderID string, next domain.OrderStatus) (*domain.Order, error)

	// MarkOrderPaid applies a settled gateway payment: status flip, loyalty
	// accrual, notification and realtime events. Used by the webhook path.
	MarkOrderPaid(ctx context.Context, orderID string, payment domain.Payment) (*domain.Order, error)

	// MarkOrderFailed moves a pending_payment order to payment_failed or
	// cancelled from a gateway rejection.
	MarkOrderFailed(ctx context.Context, orderID string, next domain.OrderStatus) error
}
