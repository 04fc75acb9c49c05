package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/core/services"
	"github.com/sazonapp/pos_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockCatalogRepository is a mock type for the CatalogRepositoryFacade interface
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context, restaurantID string, activeOnly bool) ([]domain.Category, error) {
	args := m.Called(ctx, restaurantID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCatalogRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCatalogRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context, restaurantID string, activeOnly bool) ([]domain.Product, error) {
	args := m.Called(ctx, restaurantID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListProductsByCategory(ctx context.Context, categoryID string, activeOnly bool) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// MockLoyaltyService is a mock type for the LoyaltySvcFacade interface
type MockLoyaltyService struct {
	mock.Mock
}

func (m *MockLoyaltyService) GetAccount(ctx context.Context, restaurantID string, customerPhone string) (*domain.LoyaltyAccount, error) {
	args := m.Called(ctx, restaurantID, customerPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoyaltyAccount), args.Error(1)
}

func (m *MockLoyaltyService) AccrueForOrder(ctx context.Context, order *domain.Order) (*domain.LoyaltyAccount, int64, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*domain.LoyaltyAccount), args.Get(1).(int64), args.Error(2)
}

func (m *MockLoyaltyService) ListTopAccounts(ctx context.Context, restaurantID string, limit int) ([]domain.LoyaltyAccount, error) {
	args := m.Called(ctx, restaurantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoyaltyAccount), args.Error(1)
}

// MockNotificationPublisher is a mock type for the NotificationPublisher interface
type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) PublishNotification(ctx context.Context, event domain.NotificationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockChangeBroadcaster is a mock type for the ChangeBroadcaster interface
type MockChangeBroadcaster struct {
	mock.Mock
}

func (m *MockChangeBroadcaster) BroadcastChange(event domain.ChangeEvent) {
	m.Called(event)
}

// --- Test Suite Setup ---

type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo      *MockOrderRepository
	mockCatalogRepo    *MockCatalogRepository
	mockRestaurantRepo *MockRestaurantRepository
	mockLoyaltySvc     *MockLoyaltyService
	mockPublisher      *MockNotificationPublisher
	mockBroadcaster    *MockChangeBroadcaster
	service            portssvc.OrderSvcFacade
	restaurantID       string
	waiter             *domain.User
	cook               *domain.User
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockCatalogRepo = new(MockCatalogRepository)
	suite.mockRestaurantRepo = new(MockRestaurantRepository)
	suite.mockLoyaltySvc = new(MockLoyaltyService)
	suite.mockPublisher = new(MockNotificationPublisher)
	suite.mockBroadcaster = new(MockChangeBroadcaster)
	suite.service = services.NewOrderService(
		suite.mockOrderRepo,
		suite.mockCatalogRepo,
		suite.mockRestaurantRepo,
		suite.mockLoyaltySvc,
		suite.mockPublisher,
		suite.mockBroadcaster,
	)
	suite.restaurantID = uuid.NewString()
	suite.waiter = &domain.User{
		UserID:       uuid.NewString(),
		RestaurantID: &suite.restaurantID,
		Role:         domain.RoleWaiter,
	}
	suite.cook = &domain.User{
		UserID:       uuid.NewString(),
		RestaurantID: &suite.restaurantID,
		Role:         domain.RoleKitchen,
	}
}

func (suite *OrderServiceTestSuite) product(id, name string, price int64) domain.Product {
	return domain.Product{
		ProductID:    id,
		RestaurantID: suite.restaurantID,
		Name:         name,
		Price:        decimal.NewFromInt(price),
		IsActive:     true,
	}
}

// --- CreateOrder ---

func (suite *OrderServiceTestSuite) TestCreateOrder_SnapshotsPricesAndTotals() {
	ctx := context.Background()
	burgerID := uuid.NewString()
	juiceID := uuid.NewString()

	suite.mockCatalogRepo.On("FindProductsByIDs", ctx, []string{burgerID, juiceID}).Return(map[string]domain.Product{
		burgerID: suite.product(burgerID, "Hamburguesa", 18000),
		juiceID:  suite.product(juiceID, "Jugo natural", 6000),
	}, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.Order")).Return(nil).Once()
	suite.mockBroadcaster.On("BroadcastChange", mock.AnythingOfType("domain.ChangeEvent")).Return().Once()

	order, err := suite.service.CreateOrder(ctx, suite.waiter, dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{
			{ProductID: burgerID, Quantity: 2},
			{ProductID: juiceID, Quantity: 1},
		},
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal(domain.OrderPending, order.Status)
	suite.Equal(domain.SourcePOS, order.Source)
	suite.Len(order.Items, 2)
	// 2 x 18000 + 1 x 6000
	suite.True(order.Total.Equal(decimal.NewFromInt(42000)))
	suite.True(order.Items[0].LineTotal.Equal(decimal.NewFromInt(36000)))
	suite.Equal("Hamburguesa", order.Items[0].ProductName)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_RejectsInactiveProduct() {
	ctx := context.Background()
	productID := uuid.NewString()
	inactive := suite.product(productID, "Plato retirado", 10000)
	inactive.IsActive = false

	suite.mockCatalogRepo.On("FindProductsByIDs", ctx, []string{productID}).Return(map[string]domain.Product{
		productID: inactive,
	}, nil).Once()

	order, err := suite.service.CreateOrder(ctx, suite.waiter, dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: productID, Quantity: 1}},
	})

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_RejectsForeignProduct() {
	ctx := context.Background()
	productID := uuid.NewString()
	foreign := suite.product(productID, "Plato ajeno", 10000)
	foreign.RestaurantID = uuid.NewString()

	suite.mockCatalogRepo.On("FindProductsByIDs", ctx, []string{productID}).Return(map[string]domain.Product{
		productID: foreign,
	}, nil).Once()

	_, err := suite.service.CreateOrder(ctx, suite.waiter, dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: productID, Quantity: 1}},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_KitchenRoleForbidden() {
	ctx := context.Background()

	_, err := suite.service.CreateOrder(ctx, suite.cook, dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: uuid.NewString(), Quantity: 1}},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- CreateOnlineOrder ---

func (suite *OrderServiceTestSuite) TestCreateOnlineOrder_StartsInPendingPayment() {
	ctx := context.Background()
	productID := uuid.NewString()

	suite.mockRestaurantRepo.On("FindRestaurantBySlug", ctx, "la-terraza").Return(&domain.Restaurant{
		RestaurantID: suite.restaurantID,
		Slug:         "la-terraza",
		IsActive:     true,
	}, nil).Once()
	suite.mockCatalogRepo.On("FindProductsByIDs", ctx, []string{productID}).Return(map[string]domain.Product{
		productID: suite.product(productID, "Bandeja paisa", 28000),
	}, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.Order")).Return(nil).Once()
	suite.mockBroadcaster.On("BroadcastChange", mock.AnythingOfType("domain.ChangeEvent")).Return().Once()

	order, err := suite.service.CreateOnlineOrder(ctx, "la-terraza", dto.CreateOnlineOrderRequest{
		CustomerName:  "Laura Gómez",
		CustomerPhone: "+573001112233",
		Items:         []dto.OrderItemRequest{{ProductID: productID, Quantity: 1}},
	})

	suite.Require().NoError(err)
	suite.Equal(domain.OrderPendingPayment, order.Status)
	suite.Equal(domain.SourceOnline, order.Source)
	suite.Equal("online", order.CreatedBy)
}

func (suite *OrderServiceTestSuite) TestCreateOnlineOrder_InactiveRestaurantHidden() {
	ctx := context.Background()

	suite.mockRestaurantRepo.On("FindRestaurantBySlug", ctx, "cerrado").Return(&domain.Restaurant{
		RestaurantID: uuid.NewString(),
		Slug:         "cerrado",
		IsActive:     false,
	}, nil).Once()

	_, err := suite.service.CreateOnlineOrder(ctx, "cerrado", dto.CreateOnlineOrderRequest{
		CustomerName:  "Laura Gómez",
		CustomerPhone: "+573001112233",
		Items:         []dto.OrderItemRequest{{ProductID: uuid.NewString(), Quantity: 1}},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- AdvanceOrder ---

func (suite *OrderServiceTestSuite) TestAdvanceOrder_KitchenMovesPendingToPreparing() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(&domain.Order{
		OrderID:      orderID,
		RestaurantID: suite.restaurantID,
		Status:       domain.OrderPending,
	}, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, domain.OrderPending, domain.OrderPreparing, suite.cook.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockBroadcaster.On("BroadcastChange", mock.AnythingOfType("domain.ChangeEvent")).Return().Once()

	order, err := suite.service.AdvanceOrder(ctx, suite.cook, orderID, domain.OrderPreparing)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderPreparing, order.Status)
}

func (suite *OrderServiceTestSuite) TestAdvanceOrder_IllegalTransitionConflicts() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(&domain.Order{
		OrderID:      orderID,
		RestaurantID: suite.restaurantID,
		Status:       domain.OrderDelivered,
	}, nil).Once()

	_, err := suite.service.AdvanceOrder(ctx, suite.cook, orderID, domain.OrderPreparing)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestAdvanceOrder_ConcurrentChangeConflicts() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(&domain.Order{
		OrderID:      orderID,
		RestaurantID: suite.restaurantID,
		Status:       domain.OrderPending,
	}, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, domain.OrderPending, domain.OrderPreparing, suite.cook.UserID, mock.AnythingOfType("time.Time")).Return(apperrors.ErrConflict).Once()

	_, err := suite.service.AdvanceOrder(ctx, suite.cook, orderID, domain.OrderPreparing)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *OrderServiceTestSuite) TestAdvanceOrder_ReadyNotifiesCustomer() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(&domain.Order{
		OrderID:       orderID,
		RestaurantID:  suite.restaurantID,
		Status:        domain.OrderPreparing,
		CustomerName:  "Laura Gómez",
		CustomerPhone: "+573001112233",
	}, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, domain.OrderPreparing, domain.OrderReady, suite.cook.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockBroadcaster.On("BroadcastChange", mock.AnythingOfType("domain.ChangeEvent")).Return().Once()
	suite.mockPublisher.On("PublishNotification", ctx, mock.AnythingOfType("domain.NotificationEvent")).Return(nil).Once()

	_, err := suite.service.AdvanceOrder(ctx, suite.cook, orderID, domain.OrderReady)

	suite.Require().NoError(err)
	eventArg := suite.mockPublisher.Calls[0].Arguments.Get(1).(domain.NotificationEvent)
	suite.Equal(domain.NotifyOrderReady, eventArg.Kind)
	suite.Equal("+573001112233", eventArg.CustomerPhone)
}

func (suite *OrderServiceTestSuite) TestAdvanceOrder_KitchenCannotCancel() {
	ctx := context.Background()

	_, err := suite.service.AdvanceOrder(ctx, suite.cook, uuid.NewString(), domain.OrderCancelled)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- MarkOrderPaid ---

func (suite *OrderServiceTestSuite) TestMarkOrderPaid_QueuesKitchenAndAccruesPoints() {
	ctx := context.Background()
	orderID := uuid.NewString()
	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		OrderID:   orderID,
		Method:    domain.PaymentWompi,
		Amount:    decimal.NewFromInt(42000),
		CreatedBy: "wompi",
	}

	suite.mockOrderRepo.On("PayOrderAtomic", ctx, orderID, payment).Return(&domain.Order{
		OrderID:       orderID,
		RestaurantID:  suite.restaurantID,
		Status:        domain.OrderPaid,
		Total:         decimal.NewFromInt(42000),
		CustomerName:  "Laura Gómez",
		CustomerPhone: "+573001112233",
	}, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, domain.OrderPaid, domain.OrderPending, "wompi", mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLoyaltySvc.On("AccrueForOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(&domain.LoyaltyAccount{
		Points: int64(120),
	}, int64(42), nil).Once()
	suite.mockBroadcaster.On("BroadcastChange", mock.AnythingOfType("domain.ChangeEvent")).Return().Once()
	suite.mockPublisher.On("PublishNotification", ctx, mock.AnythingOfType("domain.NotificationEvent")).Return(nil).Once()

	order, err := suite.service.MarkOrderPaid(ctx, orderID, payment)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderPending, order.Status)

	eventArg := suite.mockPublisher.Calls[0].Arguments.Get(1).(domain.NotificationEvent)
	suite.Equal(domain.NotifyOrderPaid, eventArg.Kind)
	suite.Equal(int64(42), eventArg.PointsEarned)
	suite.Equal("42000", eventArg.Amount)
}

func (suite *OrderServiceTestSuite) TestMarkOrderPaid_LoyaltyFailureDoesNotBlockSettlement() {
	ctx := context.Background()
	orderID := uuid.NewString()
	payment := domain.Payment{PaymentID: uuid.NewString(), OrderID: orderID, Method: domain.PaymentCash, Amount: decimal.NewFromInt(10000), CreatedBy: "cashier"}

	suite.mockOrderRepo.On("PayOrderAtomic", ctx, orderID, payment).Return(&domain.Order{
		OrderID:       orderID,
		RestaurantID:  suite.restaurantID,
		Status:        domain.OrderPaid,
		Total:         decimal.NewFromInt(10000),
		CustomerPhone: "+573001112233",
	}, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, domain.OrderPaid, domain.OrderPending, "cashier", mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLoyaltySvc.On("AccrueForOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(nil, int64(0), errors.New("loyalty store unavailable")).Once()
	suite.mockBroadcaster.On("BroadcastChange", mock.AnythingOfType("domain.ChangeEvent")).Return().Once()
	suite.mockPublisher.On("PublishNotification", ctx, mock.AnythingOfType("domain.NotificationEvent")).Return(nil).Once()

	order, err := suite.service.MarkOrderPaid(ctx, orderID, payment)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderPending, order.Status)
	eventArg := suite.mockPublisher.Calls[0].Arguments.Get(1).(domain.NotificationEvent)
	suite.Equal(int64(0), eventArg.PointsEarned)
}

func (suite *OrderServiceTestSuite) TestMarkOrderPaid_CounterOrderKeepsKitchenStatus() {
	ctx := context.Background()
	orderID := uuid.NewString()
	payment := domain.Payment{PaymentID: uuid.NewString(), OrderID: orderID, Method: domain.PaymentCash, Amount: decimal.NewFromInt(28000), CreatedBy: "cashier"}

	// A POS order settled at the till after delivery: the procedure stamps
	// paid_at and leaves the status alone.
	suite.mockOrderRepo.On("PayOrderAtomic", ctx, orderID, payment).Return(&domain.Order{
		OrderID:      orderID,
		RestaurantID: suite.restaurantID,
		Source:       domain.SourcePOS,
		Status:       domain.OrderDelivered,
		Total:        decimal.NewFromInt(28000),
	}, nil).Once()
	suite.mockBroadcaster.On("BroadcastChange", mock.AnythingOfType("domain.ChangeEvent")).Return().Once()

	order, err := suite.service.MarkOrderPaid(ctx, orderID, payment)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderDelivered, order.Status)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- MarkOrderFailed ---

func (suite *OrderServiceTestSuite) TestMarkOrderFailed_OnlyFailureStatusesAllowed() {
	ctx := context.Background()

	err := suite.service.MarkOrderFailed(ctx, uuid.NewString(), domain.OrderDelivered)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestMarkOrderFailed_MovesPendingPaymentToFailed() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, domain.OrderPendingPayment, domain.OrderPaymentFailed, "gateway", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.MarkOrderFailed(ctx, orderID, domain.OrderPaymentFailed)

	suite.Require().NoError(err)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
