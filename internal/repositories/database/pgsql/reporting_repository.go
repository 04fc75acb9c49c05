package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface. The
// aggregation runs inside Postgres stored procedures so the dashboard never
// pulls raw order rows over the wire.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetDashboardKPIs retrieves today's headline numbers via get_dashboard_kpis.
func (r *reportingRepository) GetDashboardKPIs(ctx context.Context, restaurantID string) (*domain.DashboardKPIs, error) {
	query := `SELECT sales_today, orders_today, average_ticket, open_orders FROM get_dashboard_kpis($1);`

	kpis := domain.DashboardKPIs{
		RestaurantID: restaurantID,
		GeneratedAt:  time.Now(),
	}
	err := r.Pool.QueryRow(ctx, query, restaurantID).Scan(
		&kpis.SalesToday,
		&kpis.OrdersToday,
		&kpis.AverageTicket,
		&kpis.OpenOrders,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying dashboard KPIs: %w", err)
	}
	return &kpis, nil
}

// GetSalesDaily retrieves per-day sales totals via get_sales_daily.
func (r *reportingRepository) GetSalesDaily(ctx context.Context, restaurantID string, from, to time.Time) ([]domain.DailySales, error) {
	query := `SELECT day, total, order_count FROM get_sales_daily($1, $2, $3);`

	rows, err := r.Pool.Query(ctx, query, restaurantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying daily sales: %w", err)
	}
	defer rows.Close()

	result := []domain.DailySales{}
	for rows.Next() {
		var row domain.DailySales
		if err := rows.Scan(&row.Day, &row.Total, &row.OrderCount); err != nil {
			return nil, fmt.Errorf("error scanning daily sales row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily sales rows: %w", err)
	}
	return result, nil
}

// GetTopProducts retrieves the best sellers via get_top_products.
func (r *reportingRepository) GetTopProducts(ctx context.Context, restaurantID string, from, to time.Time, limit int) ([]domain.TopProduct, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `SELECT product_id, product_name, quantity, revenue FROM get_top_products($1, $2, $3, $4);`

	rows, err := r.Pool.Query(ctx, query, restaurantID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying top products: %w", err)
	}
	defer rows.Close()

	result := []domain.TopProduct{}
	for rows.Next() {
		var row domain.TopProduct
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Quantity, &row.Revenue); err != nil {
			return nil, fmt.Errorf("error scanning top product row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top product rows: %w", err)
	}
	return result, nil
}
