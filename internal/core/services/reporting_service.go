package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/platform/cache"
)

// reportingService implements the ReportingService interface. The heavy
// aggregation happens in stored procedures; this layer adds short-TTL caching.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	cache         *cache.Cache
}

// NewReportingService creates a new reporting service. cache may be nil.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, reportCache *cache.Cache) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: reportingRepo,
		cache:         reportCache,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// GetDashboardKPIs retrieves today's headline numbers.
func (s *reportingService) GetDashboardKPIs(ctx context.Context, restaurantID string) (*domain.DashboardKPIs, error) {
	key := fmt.Sprintf("reports:kpis:%s", restaurantID)
	var cached domain.DashboardKPIs
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	kpis, err := s.reportingRepo.GetDashboardKPIs(ctx, restaurantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch dashboard KPIs", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	s.cache.SetJSON(ctx, key, kpis)
	return kpis, nil
}

// GetSalesDaily retrieves per-day sales totals for a date range.
func (s *reportingService) GetSalesDaily(ctx context.Context, restaurantID string, from, to time.Time) ([]domain.DailySales, error) {
	key := fmt.Sprintf("reports:sales:%s:%s:%s", restaurantID, from.Format("2006-01-02"), to.Format("2006-01-02"))
	var cached []domain.DailySales
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := s.reportingRepo.GetSalesDaily(ctx, restaurantID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch daily sales", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	if rows == nil {
		rows = []domain.DailySales{}
	}
	s.cache.SetJSON(ctx, key, rows)
	return rows, nil
}

// GetTopProducts retrieves the best sellers for a date range.
func (s *reportingService) GetTopProducts(ctx context.Context, restaurantID string, from, to time.Time, limit int) ([]domain.TopProduct, error) {
	if limit <= 0 {
		limit = 10
	}
	key := fmt.Sprintf("reports:top:%s:%s:%s:%d", restaurantID, from.Format("2006-01-02"), to.Format("2006-01-02"), limit)
	var cached []domain.TopProduct
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := s.reportingRepo.GetTopProducts(ctx, restaurantID, from, to, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch top products", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	if rows == nil {
		rows = []domain.TopProduct{}
	}
	s.cache.SetJSON(ctx, key, rows)
	return rows, nil
}
