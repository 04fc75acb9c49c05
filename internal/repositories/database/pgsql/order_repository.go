package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
	"github.com/sazonapp/pos_backend/internal/models"
	"github.com/sazonapp/pos_backend/internal/utils/mapping"
)

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(db *pgxpool.Pool) portsrepo.OrderRepositoryWithTx {
	return &PgxOrderRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxOrderRepository implements portsrepo.OrderRepositoryWithTx
var _ portsrepo.OrderRepositoryWithTx = (*PgxOrderRepository)(nil)

const orderColumns = `order_id, restaurant_id, table_id, source, customer_name, customer_phone,
	status, total, notes, paid_at, created_at, created_by, last_updated_at, last_updated_by`

func scanOrder(row pgx.Row) (models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID,
		&m.RestaurantID,
		&m.TableID,
		&m.Source,
		&m.CustomerName,
		&m.CustomerPhone,
		&m.Status,
		&m.Total,
		&m.Notes,
		&m.PaidAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveOrder persists the order and its item snapshot in one transaction.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelOrder(order)
	orderInsert := `
		INSERT INTO orders (order_id, restaurant_id, table_id, source, customer_name, customer_phone,
			status, total, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	if _, err := tx.Exec(ctx, orderInsert,
		m.OrderID,
		m.RestaurantID,
		m.TableID,
		m.Source,
		m.CustomerName,
		m.CustomerPhone,
		m.Status,
		m.Total,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemInsert := `
		INSERT INTO order_items (item_id, order_id, product_id, product_name, unit_price, quantity, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, item := range order.Items {
		mi := mapping.ToModelOrderItem(item)
		if _, err := tx.Exec(ctx, itemInsert,
			mi.ItemID,
			mi.OrderID,
			mi.ProductID,
			mi.ProductName,
			mi.UnitPrice,
			mi.Quantity,
			mi.LineTotal,
		); err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE order_id = $1;`, orderColumns)
	m, err := scanOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order %s: %w", orderID, err)
	}

	d := mapping.ToDomainOrder(m)
	items, err := r.listItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	d.Items = items
	return &d, nil
}

func (r *PgxOrderRepository) listItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	query := `
		SELECT item_id, order_id, product_id, product_name, unit_price, quantity, line_total
		FROM order_items
		WHERE order_id = $1
		ORDER BY product_name;
	`
	rows, err := r.Pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	ms := []models.OrderItem{}
	for rows.Next() {
		var m models.OrderItem
		if err := rows.Scan(
			&m.ItemID,
			&m.OrderID,
			&m.ProductID,
			&m.ProductName,
			&m.UnitPrice,
			&m.Quantity,
			&m.LineTotal,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order item row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating order item rows: %w", rows.Err())
	}
	return mapping.ToDomainOrderItemSlice(ms), nil
}

func (r *PgxOrderRepository) ListOrdersByRestaurant(ctx context.Context, restaurantID string, status domain.OrderStatus, limit int, offset int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := fmt.Sprintf(`
		SELECT %s FROM orders
		WHERE restaurant_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`, orderColumns)
	return r.queryOrders(ctx, query, restaurantID, string(status), limit, offset)
}

// ListActiveKitchenOrders retrieves the kitchen board, oldest first, with item
// snapshots attached.
func (r *PgxOrderRepository) ListActiveKitchenOrders(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM orders
		WHERE restaurant_id = $1 AND status = ANY($2)
		ORDER BY created_at;
	`, orderColumns)
	orders, err := r.queryOrders(ctx, query, restaurantID, []string{
		string(domain.OrderPending),
		string(domain.OrderPreparing),
		string(domain.OrderReady),
	})
	if err != nil {
		return nil, err
	}
	for i := range orders {
		items, err := r.listItems(ctx, orders[i].OrderID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PgxOrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	ms := []models.Order{}
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", rows.Err())
	}
	return mapping.ToDomainOrderSlice(ms), nil
}

// UpdateOrderStatus conditionally advances the order. Zero rows affected means
// the order moved out of the expected status first.
func (r *PgxOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, from domain.OrderStatus, to domain.OrderStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE orders
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE order_id = $1 AND status = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, orderID, string(from), string(to), updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update order %s status: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

// PayOrderAtomic settles the order through the pay_order_atomic procedure:
// payment insert, pending_payment to paid flip, and the SALE ledger movement
// for cash payments, all inside the procedure's transaction.
func (r *PgxOrderRepository) PayOrderAtomic(ctx context.Context, orderID string, payment domain.Payment) (*domain.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM pay_order_atomic($1, $2, $3, $4, $5, $6, $7, $8);
	`, orderColumns)
	m, err := scanOrder(r.Pool.QueryRow(ctx, query,
		orderID,
		payment.PaymentID,
		string(payment.Method),
		payment.Amount,
		payment.CashboxSessionID,
		payment.GatewayReference,
		payment.GatewayTransactionID,
		payment.CreatedBy,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to settle order %s: %w", orderID, err)
	}

	d := mapping.ToDomainOrder(m)
	items, err := r.listItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	d.Items = items
	return &d, nil
}
