package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/core/services"
	"github.com/sazonapp/pos_backend/internal/dto"
	"github.com/sazonapp/pos_backend/internal/utils/wompi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockOrderRepository is a mock type for the OrderRepositoryFacade interface
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByRestaurant(ctx context.Context, restaurantID string, status domain.OrderStatus, limit int, offset int) ([]domain.Order, error) {
	args := m.Called(ctx, restaurantID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListActiveKitchenOrders(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, from domain.OrderStatus, to domain.OrderStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, orderID, from, to, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockOrderRepository) PayOrderAtomic(ctx context.Context, orderID string, payment domain.Payment) (*domain.Order, error) {
	args := m.Called(ctx, orderID, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

// MockPaymentRepository is a mock type for the PaymentRepositoryFacade interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentByGatewayTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByOrder(ctx context.Context, orderID string) ([]domain.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockOrderService is a mock type for the OrderSvcFacade interface
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, user *domain.User, req dto.CreateOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) CreateOnlineOrder(ctx context.Context, slug string, req dto.CreateOnlineOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, slug, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) CreateTableOrder(ctx context.Context, req dto.CreateTableOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, restaurantID string, status domain.OrderStatus, limit, offset int) ([]domain.Order, error) {
	args := m.Called(ctx, restaurantID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) ListKitchenOrders(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) AdvanceOrder(ctx context.Context, user *domain.User, orderID string, next domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(ctx, user, orderID, next)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) MarkOrderPaid(ctx context.Context, orderID string, payment domain.Payment) (*domain.Order, error) {
	args := m.Called(ctx, orderID, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) MarkOrderFailed(ctx context.Context, orderID string, next domain.OrderStatus) error {
	args := m.Called(ctx, orderID, next)
	return args.Error(0)
}

// MockCashboxService is a mock type for the CashboxSvcFacade interface
type MockCashboxService struct {
	mock.Mock
}

func (m *MockCashboxService) OpenCashbox(ctx context.Context, user *domain.User, req dto.OpenCashboxRequest) (*domain.CashboxSession, error) {
	args := m.Called(ctx, user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashboxSession), args.Error(1)
}

func (m *MockCashboxService) CloseCashbox(ctx context.Context, user *domain.User, sessionID string, req dto.CloseCashboxRequest) (*domain.CashboxSession, error) {
	args := m.Called(ctx, user, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashboxSession), args.Error(1)
}

func (m *MockCashboxService) GetCashboxStatus(ctx context.Context, restaurantID string, requestedBy string) (*domain.Cashbox, *domain.CashboxSession, error) {
	args := m.Called(ctx, restaurantID, requestedBy)
	var box *domain.Cashbox
	var session *domain.CashboxSession
	if args.Get(0) != nil {
		box = args.Get(0).(*domain.Cashbox)
	}
	if args.Get(1) != nil {
		session = args.Get(1).(*domain.CashboxSession)
	}
	return box, session, args.Error(2)
}

func (m *MockCashboxService) RegisterMovement(ctx context.Context, user *domain.User, sessionID string, req dto.MovementRequest) (*domain.CashMovement, error) {
	args := m.Called(ctx, user, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashMovement), args.Error(1)
}

func (m *MockCashboxService) GetOpenSessionForUser(ctx context.Context, userID string) (*domain.CashboxSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashboxSession), args.Error(1)
}

func (m *MockCashboxService) AuditCashbox(ctx context.Context, user *domain.User, sessionID string, req dto.AuditRequest) (*domain.CashboxAudit, error) {
	args := m.Called(ctx, user, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashboxAudit), args.Error(1)
}

func (m *MockCashboxService) ListMovements(ctx context.Context, sessionID string, requestedBy string) ([]domain.CashMovement, error) {
	args := m.Called(ctx, sessionID, requestedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashMovement), args.Error(1)
}

func (m *MockCashboxService) ListSessions(ctx context.Context, restaurantID string, limit, offset int) ([]domain.CashboxSession, error) {
	args := m.Called(ctx, restaurantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashboxSession), args.Error(1)
}

func (m *MockCashboxService) ListAudits(ctx context.Context, sessionID string) ([]domain.CashboxAudit, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashboxAudit), args.Error(1)
}

// --- Test Suite Setup ---

const testEventsSecret = "test_events_secret_key"

type PaymentServiceTestSuite struct {
	suite.Suite
	mockOrderRepo   *MockOrderRepository
	mockPaymentRepo *MockPaymentRepository
	mockCashboxSvc  *MockCashboxService
	mockOrderSvc    *MockOrderService
	service         portssvc.PaymentSvcFacade
	restaurantID    string
	cashier         *domain.User
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockCashboxSvc = new(MockCashboxService)
	suite.mockOrderSvc = new(MockOrderService)
	suite.service = services.NewPaymentService(
		suite.mockOrderRepo,
		suite.mockPaymentRepo,
		suite.mockCashboxSvc,
		suite.mockOrderSvc,
		testEventsSecret,
	)
	suite.restaurantID = uuid.NewString()
	suite.cashier = &domain.User{
		UserID:       uuid.NewString(),
		RestaurantID: &suite.restaurantID,
		Role:         domain.RoleCashier,
	}
}

func (suite *PaymentServiceTestSuite) unpaidOrder(orderID string) *domain.Order {
	return &domain.Order{
		OrderID:      orderID,
		RestaurantID: suite.restaurantID,
		Status:       domain.OrderPending,
		Total:        decimal.NewFromInt(35000),
	}
}

// --- ProcessOrderPayment ---

func (suite *PaymentServiceTestSuite) TestProcessOrderPayment_CashRequiresOpenSession() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(suite.unpaidOrder(orderID), nil).Once()
	suite.mockCashboxSvc.On("GetOpenSessionForUser", ctx, suite.cashier.UserID).Return(nil, apperrors.ErrNotFound).Once()

	order, payment, err := suite.service.ProcessOrderPayment(ctx, suite.cashier, orderID, dto.PayOrderRequest{Method: "CASH"})

	suite.Require().Error(err)
	suite.Nil(order)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "caja abierta")
	suite.mockOrderSvc.AssertNotCalled(suite.T(), "MarkOrderPaid", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestProcessOrderPayment_CashTiesPaymentToSession() {
	ctx := context.Background()
	orderID := uuid.NewString()
	sessionID := uuid.NewString()

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(suite.unpaidOrder(orderID), nil).Once()
	suite.mockCashboxSvc.On("GetOpenSessionForUser", ctx, suite.cashier.UserID).Return(&domain.CashboxSession{
		SessionID: sessionID,
		UserID:    suite.cashier.UserID,
		Status:    domain.SessionOpen,
	}, nil).Once()
	suite.mockOrderSvc.On("MarkOrderPaid", ctx, orderID, mock.AnythingOfType("domain.Payment")).Return(&domain.Order{
		OrderID: orderID,
		Status:  domain.OrderPending,
	}, nil).Once()

	order, payment, err := suite.service.ProcessOrderPayment(ctx, suite.cashier, orderID, dto.PayOrderRequest{Method: "CASH"})

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Require().NotNil(payment)
	suite.Equal(domain.PaymentCash, payment.Method)
	suite.Require().NotNil(payment.CashboxSessionID)
	suite.Equal(sessionID, *payment.CashboxSessionID)
	suite.True(payment.Amount.Equal(decimal.NewFromInt(35000)))
}

func (suite *PaymentServiceTestSuite) TestProcessOrderPayment_CardSkipsSessionCheck() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(suite.unpaidOrder(orderID), nil).Once()
	suite.mockOrderSvc.On("MarkOrderPaid", ctx, orderID, mock.AnythingOfType("domain.Payment")).Return(&domain.Order{
		OrderID: orderID,
	}, nil).Once()

	_, payment, err := suite.service.ProcessOrderPayment(ctx, suite.cashier, orderID, dto.PayOrderRequest{Method: "CARD"})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentCard, payment.Method)
	suite.Nil(payment.CashboxSessionID)
	suite.mockCashboxSvc.AssertNotCalled(suite.T(), "GetOpenSessionForUser", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestProcessOrderPayment_RejectsAlreadyPaidOrder() {
	ctx := context.Background()
	orderID := uuid.NewString()
	paidAt := time.Now()
	order := suite.unpaidOrder(orderID)
	order.PaidAt = &paidAt

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(order, nil).Once()

	_, _, err := suite.service.ProcessOrderPayment(ctx, suite.cashier, orderID, dto.PayOrderRequest{Method: "CASH"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PaymentServiceTestSuite) TestProcessOrderPayment_RejectsGatewayMethodAtCounter() {
	ctx := context.Background()

	_, _, err := suite.service.ProcessOrderPayment(ctx, suite.cashier, uuid.NewString(), dto.PayOrderRequest{Method: "WOMPI"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestProcessOrderPayment_AcceptsEveryPayableStatus() {
	ctx := context.Background()

	// The accepted set must stay in lockstep with the gate inside
	// pay_order_atomic: anything unpaid and not terminal can be settled.
	payable := []domain.OrderStatus{
		domain.OrderPendingPayment,
		domain.OrderPending,
		domain.OrderPreparing,
		domain.OrderReady,
		domain.OrderDelivered,
	}
	for _, status := range payable {
		suite.Require().True(status.IsPayable(), "status %s must be payable", status)

		orderID := uuid.NewString()
		order := suite.unpaidOrder(orderID)
		order.Status = status
		suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(order, nil).Once()
		suite.mockOrderSvc.On("MarkOrderPaid", ctx, orderID, mock.AnythingOfType("domain.Payment")).Return(order, nil).Once()

		_, _, err := suite.service.ProcessOrderPayment(ctx, suite.cashier, orderID, dto.PayOrderRequest{Method: "CARD"})
		suite.Require().NoError(err, "status %s must settle", status)
	}
}

func (suite *PaymentServiceTestSuite) TestProcessOrderPayment_RejectsTerminalStatuses() {
	ctx := context.Background()

	for _, status := range []domain.OrderStatus{domain.OrderPaid, domain.OrderCancelled, domain.OrderPaymentFailed} {
		suite.Require().False(status.IsPayable(), "status %s must not be payable", status)

		orderID := uuid.NewString()
		order := suite.unpaidOrder(orderID)
		order.Status = status
		suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(order, nil).Once()

		_, _, err := suite.service.ProcessOrderPayment(ctx, suite.cashier, orderID, dto.PayOrderRequest{Method: "CARD"})
		suite.Require().Error(err, "status %s must be rejected", status)
		suite.ErrorIs(err, apperrors.ErrConflict)
	}
	suite.mockOrderSvc.AssertNotCalled(suite.T(), "MarkOrderPaid", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestProcessOrderPayment_OtherRestaurantOrderHidden() {
	ctx := context.Background()
	orderID := uuid.NewString()
	order := suite.unpaidOrder(orderID)
	order.RestaurantID = uuid.NewString()

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(order, nil).Once()

	_, _, err := suite.service.ProcessOrderPayment(ctx, suite.cashier, orderID, dto.PayOrderRequest{Method: "CASH"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- VerifyEventSignature ---

func (suite *PaymentServiceTestSuite) TestVerifyEventSignature() {
	event := dto.WompiEvent{
		Event: "transaction.updated",
		Data: dto.WompiEventData{Transaction: dto.WompiTransaction{
			ID:        "txn-12345",
			Status:    "APPROVED",
			Reference: wompi.BuildReference(uuid.NewString(), time.Now().UnixMilli()),
		}},
	}
	timestamp := "1724960000"
	signature := wompi.ComputeSignature(event.SignedFields(), timestamp, testEventsSecret)

	suite.True(suite.service.VerifyEventSignature(event, timestamp, signature))

	// Any tampering with the signed fields must invalidate the signature.
	tampered := event
	tampered.Data.Transaction.Status = "DECLINED"
	suite.False(suite.service.VerifyEventSignature(tampered, timestamp, signature))
	suite.False(suite.service.VerifyEventSignature(event, "1724960001", signature))
	suite.False(suite.service.VerifyEventSignature(event, timestamp, ""))
}

// --- ProcessGatewayEvent ---

func gatewayEvent(orderID, txnID, status string, amountInCents int64) dto.WompiEvent {
	return dto.WompiEvent{
		Event: "transaction.updated",
		Data: dto.WompiEventData{Transaction: dto.WompiTransaction{
			ID:            txnID,
			Status:        status,
			Reference:     wompi.BuildReference(orderID, 1724960000000),
			AmountInCents: amountInCents,
		}},
	}
}

func (suite *PaymentServiceTestSuite) TestProcessGatewayEvent_ApprovedSettlesOrder() {
	ctx := context.Background()
	orderID := uuid.NewString()
	txnID := "txn-" + uuid.NewString()

	suite.mockPaymentRepo.On("FindPaymentByGatewayTransactionID", ctx, txnID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockOrderSvc.On("MarkOrderPaid", ctx, orderID, mock.AnythingOfType("domain.Payment")).Return(&domain.Order{
		OrderID: orderID,
	}, nil).Once()

	err := suite.service.ProcessGatewayEvent(ctx, gatewayEvent(orderID, txnID, "APPROVED", 3500000))

	suite.Require().NoError(err)
	paymentArg := suite.mockOrderSvc.Calls[0].Arguments.Get(2).(domain.Payment)
	suite.Equal(domain.PaymentWompi, paymentArg.Method)
	suite.Equal(txnID, paymentArg.GatewayTransactionID)
	// Gateway amounts arrive in cents.
	suite.True(paymentArg.Amount.Equal(decimal.NewFromInt(35000)))
}

func (suite *PaymentServiceTestSuite) TestProcessGatewayEvent_DeclinedFailsOrder() {
	ctx := context.Background()
	orderID := uuid.NewString()
	txnID := "txn-" + uuid.NewString()

	suite.mockPaymentRepo.On("FindPaymentByGatewayTransactionID", ctx, txnID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockOrderSvc.On("MarkOrderFailed", ctx, orderID, domain.OrderPaymentFailed).Return(nil).Once()

	err := suite.service.ProcessGatewayEvent(ctx, gatewayEvent(orderID, txnID, "DECLINED", 3500000))

	suite.Require().NoError(err)
	suite.mockOrderSvc.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestProcessGatewayEvent_VoidedCancelsOrder() {
	ctx := context.Background()
	orderID := uuid.NewString()
	txnID := "txn-" + uuid.NewString()

	suite.mockPaymentRepo.On("FindPaymentByGatewayTransactionID", ctx, txnID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockOrderSvc.On("MarkOrderFailed", ctx, orderID, domain.OrderCancelled).Return(nil).Once()

	err := suite.service.ProcessGatewayEvent(ctx, gatewayEvent(orderID, txnID, "VOIDED", 3500000))

	suite.Require().NoError(err)
}

func (suite *PaymentServiceTestSuite) TestProcessGatewayEvent_RedeliveryIsIdempotent() {
	ctx := context.Background()
	orderID := uuid.NewString()
	txnID := "txn-" + uuid.NewString()

	suite.mockPaymentRepo.On("FindPaymentByGatewayTransactionID", ctx, txnID).Return(&domain.Payment{
		PaymentID:            uuid.NewString(),
		OrderID:              orderID,
		GatewayTransactionID: txnID,
	}, nil).Once()

	err := suite.service.ProcessGatewayEvent(ctx, gatewayEvent(orderID, txnID, "APPROVED", 3500000))

	suite.Require().NoError(err)
	suite.mockOrderSvc.AssertNotCalled(suite.T(), "MarkOrderPaid", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestProcessGatewayEvent_MalformedReference() {
	ctx := context.Background()
	event := dto.WompiEvent{
		Data: dto.WompiEventData{Transaction: dto.WompiTransaction{
			ID:        "txn-bad",
			Status:    "APPROVED",
			Reference: "INVOICE-99",
		}},
	}

	err := suite.service.ProcessGatewayEvent(ctx, event)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderSvc.AssertNotCalled(suite.T(), "MarkOrderPaid", mock.Anything, mock.Anything, mock.Anything)
	suite.mockOrderSvc.AssertNotCalled(suite.T(), "MarkOrderFailed", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestProcessGatewayEvent_UnknownStatusIgnored() {
	ctx := context.Background()
	orderID := uuid.NewString()
	txnID := "txn-" + uuid.NewString()

	suite.mockPaymentRepo.On("FindPaymentByGatewayTransactionID", ctx, txnID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ProcessGatewayEvent(ctx, gatewayEvent(orderID, txnID, "PENDING", 3500000))

	suite.Require().NoError(err)
	suite.mockOrderSvc.AssertNotCalled(suite.T(), "MarkOrderPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
