package repositories

import (
	"context"
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// ReportingRepository defines operations for retrieving dashboard report data.
// Each method wraps a stored procedure so the aggregation runs inside Postgres.
type ReportingRepository interface {
	// GetDashboardKPIs retrieves today's headline numbers via get_dashboard_kpis.
	GetDashboardKPIs(ctx context.Context, restaurantID string) (*domain.DashboardKPIs, error)

	// GetSalesDaily retrieves per-day sales totals for a date range via get_sales_daily.
	GetSalesDaily(ctx context.Context, restaurantID string, from, to time.Time) ([]domain.DailySales, error)

	// GetTopProducts retrieves the best sellers for a date range via get_top_products.
	GetTopProducts(ctx context.Context, restaurantID string, from, to time.Time, limit int) ([]domain.TopProduct, error)
}
