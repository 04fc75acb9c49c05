package repositories

import (
	"context"
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// OrderReader defines read operations for order data
type OrderReader interface {
	// FindOrderByID retrieves a specific order with its item snapshot.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrdersByRestaurant retrieves a paginated list of orders, most recent
	// first. An empty status filter returns every status.
	ListOrdersByRestaurant(ctx context.Context, restaurantID string, status domain.OrderStatus, limit int, offset int) ([]domain.Order, error)

	// ListActiveKitchenOrders retrieves the pending/preparing/ready orders the
	// kitchen board displays, oldest first.
	ListActiveKitchenOrders(ctx context.Context, restaurantID string) ([]domain.Order, error)
}

// OrderWriter defines write operations for order data
type OrderWriter interface {
	// SaveOrder persists an order and its items within a single transaction.
	SaveOrder(ctx context.Context, order domain.Order) error

	// UpdateOrderStatus conditionally advances an order from one status to
	// another. It returns apperrors.ErrConflict when the order is no longer in
	// the expected status.
	UpdateOrderStatus(ctx context.Context, orderID string, from domain.OrderStatus, to domain.OrderStatus, updatedBy string, updatedAt time.Time) error
}

// OrderPaymentSupport defines the atomic settlement path
type OrderPaymentSupport interface {
	// PayOrderAtomic settles an order through the pay_order_atomic stored
	// procedure: it records the payment, marks the order paid, and appends the
	// SALE ledger movement for cash payments, all in one database transaction.
	// It returns the order in its post-payment state.
	PayOrderAtomic(ctx context.Context, orderID string, payment domain.Payment) (*domain.Order, error)
}

// OrderRepositoryFacade combines all order-related repository interfaces
// This is a facade for clients that need access to all operations
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
	OrderPaymentSupport
}

// OrderRepositoryWithTx extends OrderRepositoryFacade with transaction capabilities
type OrderRepositoryWithTx interface {
	OrderRepositoryFacade
	TransactionManager
}
