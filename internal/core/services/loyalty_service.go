package services

import (
	"context"
	"log/slog"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// loyaltyService implements the LoyaltySvcFacade interface
type loyaltyService struct {
	BaseService
	loyaltyRepo portsrepo.LoyaltyRepository
	// One point per this many currency units of a paid order.
	pointsDivisor int64
}

// NewLoyaltyService creates a new loyalty service with the provided dependencies
func NewLoyaltyService(loyaltyRepo portsrepo.LoyaltyRepository, pointsDivisor int64) portssvc.LoyaltySvcFacade {
	if pointsDivisor <= 0 {
		pointsDivisor = 1000
	}
	return &loyaltyService{
		loyaltyRepo:   loyaltyRepo,
		pointsDivisor: pointsDivisor,
	}
}

var _ portssvc.LoyaltySvcFacade = (*loyaltyService)(nil)

// GetAccount retrieves a customer's loyalty account by phone.
func (s *loyaltyService) GetAccount(ctx context.Context, restaurantID string, customerPhone string) (*domain.LoyaltyAccount, error) {
	return s.loyaltyRepo.FindAccountByPhone(ctx, restaurantID, customerPhone)
}

// AccrueForOrder awards points for a paid order: floor(total / divisor).
func (s *loyaltyService) AccrueForOrder(ctx context.Context, order *domain.Order) (*domain.LoyaltyAccount, int64, error) {
	if order == nil || order.CustomerPhone == "" {
		return nil, 0, nil
	}

	earned := order.Total.Div(decimal.NewFromInt(s.pointsDivisor)).IntPart()
	if earned <= 0 {
		return nil, 0, nil
	}

	account, err := s.loyaltyRepo.AccruePoints(ctx, order.RestaurantID, order.CustomerPhone, order.CustomerName, earned, order.OrderID)
	if err != nil {
		s.LogError(ctx, err, "Failed to accrue loyalty points",
			slog.String("order_id", order.OrderID),
			slog.Int64("points", earned))
		return nil, 0, err
	}

	s.LogInfo(ctx, "Loyalty points accrued",
		slog.String("account_id", account.AccountID),
		slog.Int64("earned", earned),
		slog.Int64("balance", account.Points))
	return account, earned, nil
}

// ListTopAccounts retrieves the restaurant's highest-point accounts.
func (s *loyaltyService) ListTopAccounts(ctx context.Context, restaurantID string, limit int) ([]domain.LoyaltyAccount, error) {
	if limit <= 0 {
		limit = 10
	}
	accounts, err := s.loyaltyRepo.ListTopAccounts(ctx, restaurantID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loyalty accounts", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	if accounts == nil {
		return []domain.LoyaltyAccount{}, nil
	}
	return accounts, nil
}
