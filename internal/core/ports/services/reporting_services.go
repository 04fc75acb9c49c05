package services

import (
	"context"
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// ReportingService defines operations for dashboard reports. Results are
// cached for a short TTL; the cache is skipped when Redis is unavailable.
type ReportingService interface {
	// GetDashboardKPIs retrieves today's headline numbers.
	GetDashboardKPIs(ctx context.Context, restaurantID string) (*domain.DashboardKPIs, error)

	// GetSalesDaily retrieves per-day sales totals for a date range.
	GetSalesDaily(ctx context.Context, restaurantID string, from, to time.Time) ([]domain.DailySales, error)

	// GetTopProducts retrieves the best sellers for a date range.
	GetTopProducts(ctx context.Context, restaurantID string, from, to time.Time, limit int) ([]domain.TopProduct, error)
}

// LoyaltySvcFacade defines operations for customer loyalty points.
type LoyaltySvcFacade interface {
	// GetAccount retrieves a customer's loyalty account by phone.
	GetAccount(ctx context.Context, restaurantID string, customerPhone string) (*domain.LoyaltyAccount, error)

	// AccrueForOrder awards points for a paid order using the configured
	// amount-per-point divisor. It returns the updated account and the points
	// earned by this order. Orders without a customer phone accrue nothing.
	AccrueForOrder(ctx context.Context, order *domain.Order) (*domain.LoyaltyAccount, int64, error)

	// ListTopAccounts retrieves the restaurant's highest-point accounts.
	ListTopAccounts(ctx context.Context, restaurantID string, limit int) ([]domain.LoyaltyAccount, error)
}
