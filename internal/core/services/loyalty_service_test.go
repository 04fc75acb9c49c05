package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/sazonapp/pos_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLoyaltyRepository is a mock type for the LoyaltyRepository interface
type MockLoyaltyRepository struct {
	mock.Mock
}

func (m *MockLoyaltyRepository) FindAccountByPhone(ctx context.Context, restaurantID string, customerPhone string) (*domain.LoyaltyAccount, error) {
	args := m.Called(ctx, restaurantID, customerPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoyaltyAccount), args.Error(1)
}

func (m *MockLoyaltyRepository) AccruePoints(ctx context.Context, restaurantID string, customerPhone string, customerName string, points int64, updatedBy string) (*domain.LoyaltyAccount, error) {
	args := m.Called(ctx, restaurantID, customerPhone, customerName, points, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoyaltyAccount), args.Error(1)
}

func (m *MockLoyaltyRepository) ListTopAccounts(ctx context.Context, restaurantID string, limit int) ([]domain.LoyaltyAccount, error) {
	args := m.Called(ctx, restaurantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoyaltyAccount), args.Error(1)
}

func TestAccrueForOrder_FloorsPointsByDivisor(t *testing.T) {
	repo := new(MockLoyaltyRepository)
	svc := services.NewLoyaltyService(repo, 1000)
	ctx := context.Background()

	order := &domain.Order{
		OrderID:       uuid.NewString(),
		RestaurantID:  uuid.NewString(),
		CustomerName:  "Laura Gómez",
		CustomerPhone: "+573001112233",
		Total:         decimal.NewFromInt(42900),
	}

	// 42900 / 1000 = 42.9, floored to 42.
	repo.On("AccruePoints", ctx, order.RestaurantID, order.CustomerPhone, order.CustomerName, int64(42), order.OrderID).Return(&domain.LoyaltyAccount{
		AccountID: uuid.NewString(),
		Points:    142,
	}, nil).Once()

	account, earned, err := svc.AccrueForOrder(ctx, order)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), earned)
	assert.Equal(t, int64(142), account.Points)
	repo.AssertExpectations(t)
}

func TestAccrueForOrder_SkipsAnonymousOrders(t *testing.T) {
	repo := new(MockLoyaltyRepository)
	svc := services.NewLoyaltyService(repo, 1000)

	account, earned, err := svc.AccrueForOrder(context.Background(), &domain.Order{
		OrderID: uuid.NewString(),
		Total:   decimal.NewFromInt(50000),
	})

	assert.NoError(t, err)
	assert.Nil(t, account)
	assert.Zero(t, earned)
	repo.AssertNotCalled(t, "AccruePoints", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccrueForOrder_SkipsOrdersBelowDivisor(t *testing.T) {
	repo := new(MockLoyaltyRepository)
	svc := services.NewLoyaltyService(repo, 1000)

	account, earned, err := svc.AccrueForOrder(context.Background(), &domain.Order{
		OrderID:       uuid.NewString(),
		CustomerPhone: "+573001112233",
		Total:         decimal.NewFromInt(900),
	})

	assert.NoError(t, err)
	assert.Nil(t, account)
	assert.Zero(t, earned)
	repo.AssertNotCalled(t, "AccruePoints", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
