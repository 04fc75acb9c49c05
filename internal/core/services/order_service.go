package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// orderService implements the OrderSvcFacade interface
type orderService struct {
	BaseService
	orderRepo      portsrepo.OrderRepositoryFacade
	catalogRepo    portsrepo.CatalogRepositoryFacade
	restaurantRepo portsrepo.RestaurantRepositoryFacade
	loyaltySvc     portssvc.LoyaltySvcFacade
	publisher      portssvc.NotificationPublisher
	broadcaster    portssvc.ChangeBroadcaster
}

// NewOrderService creates a new order service with the provided dependencies.
// publisher and broadcaster may be nil when messaging/realtime are disabled.
func NewOrderService(
	orderRepo portsrepo.OrderRepositoryFacade,
	catalogRepo portsrepo.CatalogRepositoryFacade,
	restaurantRepo portsrepo.RestaurantRepositoryFacade,
	loyaltySvc portssvc.LoyaltySvcFacade,
	publisher portssvc.NotificationPublisher,
	broadcaster portssvc.ChangeBroadcaster,
) portssvc.OrderSvcFacade {
	return &orderService{
		orderRepo:      orderRepo,
		catalogRepo:    catalogRepo,
		restaurantRepo: restaurantRepo,
		loyaltySvc:     loyaltySvc,
		publisher:      publisher,
		broadcaster:    broadcaster,
	}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// buildItems snapshots products into order items and totals them. Prices come
// from the catalog at order time so later edits never change the order.
func (s *orderService) buildItems(ctx context.Context, restaurantID, orderID string, reqItems []dto.OrderItemRequest) ([]domain.OrderItem, decimal.Decimal, error) {
	ids := make([]string, len(reqItems))
	for i, it := range reqItems {
		ids[i] = it.ProductID
	}
	products, err := s.catalogRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, err
	}

	items := make([]domain.OrderItem, 0, len(reqItems))
	total := decimal.Zero
	for _, it := range reqItems {
		product, ok := products[it.ProductID]
		if !ok || product.RestaurantID != restaurantID || !product.IsActive {
			return nil, decimal.Zero, fmt.Errorf("%w: product %s not available", apperrors.ErrValidation, it.ProductID)
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items = append(items, domain.OrderItem{
			ItemID:      uuid.NewString(),
			OrderID:     orderID,
			ProductID:   product.ProductID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    it.Quantity,
			LineTotal:   lineTotal,
		})
		total = total.Add(lineTotal)
	}
	return items, total, nil
}

func (s *orderService) saveOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save order", slog.String("order_id", order.OrderID))
		return nil, err
	}
	s.LogInfo(ctx, "Order created",
		slog.String("order_id", order.OrderID),
		slog.String("source", string(order.Source)),
		slog.String("total", order.Total.String()))
	s.broadcast(domain.ChangeEvent{
		Table:        "orders",
		Op:           domain.ChangeInsert,
		RestaurantID: order.RestaurantID,
		RecordID:     order.OrderID,
		Payload:      order,
		OccurredAt:   order.CreatedAt,
	})
	return &order, nil
}

// CreateOrder creates a staff order at the counter. POS orders skip payment
// collection here; they go straight to the kitchen and settle at the till.
func (s *orderService) CreateOrder(ctx context.Context, user *domain.User, req dto.CreateOrderRequest) (*domain.Order, error) {
	restaurantID, err := s.RequireRestaurant(user)
	if err != nil {
		return nil, err
	}
	if err := s.RequirePermission(ctx, user, domain.PermTakeOrders); err != nil {
		return nil, err
	}

	now := time.Now()
	orderID := uuid.NewString()
	items, total, err := s.buildItems(ctx, restaurantID, orderID, req.Items)
	if err != nil {
		return nil, err
	}

	order := domain.Order{
		OrderID:       orderID,
		RestaurantID:  restaurantID,
		TableID:       req.TableID,
		Source:        domain.SourcePOS,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Status:        domain.OrderPending,
		Total:         total,
		Notes:         req.Notes,
		Items:         items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     user.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: user.UserID,
		},
	}
	return s.saveOrder(ctx, order)
}

// CreateOnlineOrder creates a customer order against the restaurant slug.
func (s *orderService) CreateOnlineOrder(ctx context.Context, slug string, req dto.CreateOnlineOrderRequest) (*domain.Order, error) {
	restaurant, err := s.restaurantRepo.FindRestaurantBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !restaurant.IsActive {
		return nil, apperrors.ErrNotFound
	}

	now := time.Now()
	orderID := uuid.NewString()
	items, total, err := s.buildItems(ctx, restaurant.RestaurantID, orderID, req.Items)
	if err != nil {
		return nil, err
	}

	order := domain.Order{
		OrderID:       orderID,
		RestaurantID:  restaurant.RestaurantID,
		Source:        domain.SourceOnline,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Status:        domain.OrderPendingPayment,
		Total:         total,
		Notes:         req.Notes,
		Items:         items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "online",
			LastUpdatedAt: now,
			LastUpdatedBy: "online",
		},
	}
	return s.saveOrder(ctx, order)
}

// CreateTableOrder creates a dine-in order from a table QR token.
func (s *orderService) CreateTableOrder(ctx context.Context, req dto.CreateTableOrderRequest) (*domain.Order, error) {
	table, err := s.restaurantRepo.FindTableByQRToken(ctx, req.QRToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown table code", apperrors.ErrValidation)
		}
		return nil, err
	}
	if !table.IsActive {
		return nil, fmt.Errorf("%w: unknown table code", apperrors.ErrValidation)
	}

	now := time.Now()
	orderID := uuid.NewString()
	items, total, err := s.buildItems(ctx, table.RestaurantID, orderID, req.Items)
	if err != nil {
		return nil, err
	}

	order := domain.Order{
		OrderID:       orderID,
		RestaurantID:  table.RestaurantID,
		TableID:       &table.TableID,
		Source:        domain.SourceTable,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Status:        domain.OrderPending,
		Total:         total,
		Notes:         req.Notes,
		Items:         items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "table-qr",
			LastUpdatedAt: now,
			LastUpdatedBy: "table-qr",
		},
	}
	return s.saveOrder(ctx, order)
}

// GetOrder retrieves an order with its items.
func (s *orderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orderRepo.FindOrderByID(ctx, orderID)
}

// ListOrders retrieves a paginated order history, optionally by status.
func (s *orderService) ListOrders(ctx context.Context, restaurantID string, status domain.OrderStatus, limit, offset int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	orders, err := s.orderRepo.ListOrdersByRestaurant(ctx, restaurantID, status, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	if orders == nil {
		return []domain.Order{}, nil
	}
	return orders, nil
}

// ListKitchenOrders retrieves the active kitchen board, oldest first.
func (s *orderService) ListKitchenOrders(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListActiveKitchenOrders(ctx, restaurantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list kitchen orders", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	if orders == nil {
		return []domain.Order{}, nil
	}
	return orders, nil
}

// AdvanceOrder moves an order along the status machine.
func (s *orderService) AdvanceOrder(ctx context.Context, user *domain.User, orderID string, next domain.OrderStatus) (*domain.Order, error) {
	restaurantID, err := s.RequireRestaurant(user)
	if err != nil {
		return nil, err
	}
	perm := domain.PermAdvanceKitchen
	if next == domain.OrderCancelled {
		perm = domain.PermTakeOrders
	}
	if err := s.RequirePermission(ctx, user, perm); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.RestaurantID != restaurantID {
		return nil, apperrors.ErrNotFound
	}
	if !order.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: cannot move order from %s to %s", apperrors.ErrConflict, order.Status, next)
	}

	now := time.Now()
	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, order.Status, next, user.UserID, now); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: order status changed concurrently", apperrors.ErrConflict)
		}
		s.LogError(ctx, err, "Failed to advance order", slog.String("order_id", orderID))
		return nil, err
	}
	order.Status = next
	order.LastUpdatedAt = now
	order.LastUpdatedBy = user.UserID

	s.LogInfo(ctx, "Order advanced",
		slog.String("order_id", orderID),
		slog.String("status", string(next)))
	s.broadcast(domain.ChangeEvent{
		Table:        "orders",
		Op:           domain.ChangeUpdate,
		RestaurantID: restaurantID,
		RecordID:     orderID,
		Payload:      order,
		OccurredAt:   now,
	})

	if next == domain.OrderReady && order.CustomerPhone != "" {
		s.publish(ctx, domain.NotificationEvent{
			Kind:          domain.NotifyOrderReady,
			RestaurantID:  restaurantID,
			CustomerName:  order.CustomerName,
			CustomerPhone: order.CustomerPhone,
			OrderID:       orderID,
			OccurredAt:    now,
		})
	}
	return order, nil
}

// MarkOrderPaid applies a settled payment. The payment insert, the paid_at
// stamp, and the SALE ledger movement run inside the pay_order_atomic
// procedure; the kitchen handoff, loyalty accrual, and events follow. Counter
// orders already in the kitchen flow keep their status and only get stamped.
func (s *orderService) MarkOrderPaid(ctx context.Context, orderID string, payment domain.Payment) (*domain.Order, error) {
	order, err := s.orderRepo.PayOrderAtomic(ctx, orderID, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to settle order", slog.String("order_id", orderID))
		return nil, err
	}

	now := time.Now()
	// Orders the procedure flipped from pending_payment to paid go straight
	// to the kitchen.
	if order.Status == domain.OrderPaid {
		if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, domain.OrderPaid, domain.OrderPending, payment.CreatedBy, now); err != nil {
			s.LogError(ctx, err, "Failed to queue paid order for kitchen", slog.String("order_id", orderID))
		} else {
			order.Status = domain.OrderPending
		}
	}

	var pointsEarned int64
	if order.CustomerPhone != "" && s.loyaltySvc != nil {
		_, earned, err := s.loyaltySvc.AccrueForOrder(ctx, order)
		if err != nil {
			s.LogError(ctx, err, "Failed to accrue loyalty points", slog.String("order_id", orderID))
		} else {
			pointsEarned = earned
		}
	}

	s.LogInfo(ctx, "Order paid",
		slog.String("order_id", orderID),
		slog.String("method", string(payment.Method)),
		slog.String("amount", payment.Amount.String()))
	s.broadcast(domain.ChangeEvent{
		Table:        "orders",
		Op:           domain.ChangeUpdate,
		RestaurantID: order.RestaurantID,
		RecordID:     orderID,
		Payload:      order,
		OccurredAt:   now,
	})
	if order.CustomerPhone != "" {
		s.publish(ctx, domain.NotificationEvent{
			Kind:          domain.NotifyOrderPaid,
			RestaurantID:  order.RestaurantID,
			CustomerName:  order.CustomerName,
			CustomerPhone: order.CustomerPhone,
			OrderID:       orderID,
			Amount:        payment.Amount.String(),
			PointsEarned:  pointsEarned,
			OccurredAt:    now,
		})
	}
	return order, nil
}

// MarkOrderFailed moves a pending_payment order to payment_failed or cancelled.
func (s *orderService) MarkOrderFailed(ctx context.Context, orderID string, next domain.OrderStatus) error {
	if next != domain.OrderPaymentFailed && next != domain.OrderCancelled {
		return fmt.Errorf("%w: invalid failure status %s", apperrors.ErrValidation, next)
	}
	now := time.Now()
	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, domain.OrderPendingPayment, next, "gateway", now); err != nil {
		s.LogError(ctx, err, "Failed to mark order failed", slog.String("order_id", orderID))
		return err
	}
	s.LogInfo(ctx, "Order payment failed",
		slog.String("order_id", orderID),
		slog.String("status", string(next)))
	return nil
}

func (s *orderService) broadcast(event domain.ChangeEvent) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastChange(event)
	}
}

func (s *orderService) publish(ctx context.Context, event domain.NotificationEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishNotification(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish notification",
			slog.String("kind", string(event.Kind)))
	}
}
