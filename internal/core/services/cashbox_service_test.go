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
	"github.com/sazonapp/pos_backend/internal/utils/cashledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockCashboxRepository is a mock type for the CashboxRepositoryFacade interface
type MockCashboxRepository struct {
	mock.Mock
}

func (m *MockCashboxRepository) FindCashboxByID(ctx context.Context, cashboxID string) (*domain.Cashbox, error) {
	args := m.Called(ctx, cashboxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashbox), args.Error(1)
}

func (m *MockCashboxRepository) FindDefaultCashbox(ctx context.Context, restaurantID string, createdBy string) (*domain.Cashbox, error) {
	args := m.Called(ctx, restaurantID, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashbox), args.Error(1)
}

func (m *MockCashboxRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.CashboxSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashboxSession), args.Error(1)
}

func (m *MockCashboxRepository) FindOpenSessionByCashbox(ctx context.Context, cashboxID string) (*domain.CashboxSession, error) {
	args := m.Called(ctx, cashboxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashboxSession), args.Error(1)
}

func (m *MockCashboxRepository) FindOpenSessionByUser(ctx context.Context, userID string) (*domain.CashboxSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashboxSession), args.Error(1)
}

func (m *MockCashboxRepository) ListSessionsByCashbox(ctx context.Context, cashboxID string, limit int, offset int) ([]domain.CashboxSession, error) {
	args := m.Called(ctx, cashboxID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashboxSession), args.Error(1)
}

func (m *MockCashboxRepository) OpenSession(ctx context.Context, session domain.CashboxSession, opening domain.CashMovement) error {
	args := m.Called(ctx, session, opening)
	return args.Error(0)
}

func (m *MockCashboxRepository) CloseSession(ctx context.Context, sessionID string, closingAmount decimal.Decimal, closingNotes string, closedBy string, closedAt time.Time) (*domain.CashboxSession, error) {
	args := m.Called(ctx, sessionID, closingAmount, closingNotes, closedBy, closedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashboxSession), args.Error(1)
}

func (m *MockCashboxRepository) SaveMovement(ctx context.Context, movement domain.CashMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockCashboxRepository) ListMovementsBySession(ctx context.Context, sessionID string) ([]domain.CashMovement, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashMovement), args.Error(1)
}

func (m *MockCashboxRepository) SaveAudit(ctx context.Context, audit domain.CashboxAudit) error {
	args := m.Called(ctx, audit)
	return args.Error(0)
}

func (m *MockCashboxRepository) ListAuditsBySession(ctx context.Context, sessionID string) ([]domain.CashboxAudit, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashboxAudit), args.Error(1)
}

// --- Test Suite Setup ---

type CashboxServiceTestSuite struct {
	suite.Suite
	mockCashboxRepo *MockCashboxRepository
	mockShiftRepo   *MockShiftRepository
	service         portssvc.CashboxSvcFacade
	restaurantID    string
	cashier         *domain.User
	admin           *domain.User
}

func (suite *CashboxServiceTestSuite) SetupTest() {
	suite.mockCashboxRepo = new(MockCashboxRepository)
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.service = services.NewCashboxService(suite.mockCashboxRepo, suite.mockShiftRepo, nil)
	suite.restaurantID = uuid.NewString()
	suite.cashier = &domain.User{
		UserID:       uuid.NewString(),
		RestaurantID: &suite.restaurantID,
		Role:         domain.RoleCashier,
	}
	suite.admin = &domain.User{
		UserID:       uuid.NewString(),
		RestaurantID: &suite.restaurantID,
		Role:         domain.RoleManager,
	}
}

func (suite *CashboxServiceTestSuite) openShift() *domain.Shift {
	return &domain.Shift{
		ShiftID:      uuid.NewString(),
		UserID:       suite.cashier.UserID,
		RestaurantID: suite.restaurantID,
		Status:       domain.ShiftOpen,
	}
}

func (suite *CashboxServiceTestSuite) closedCashbox() *domain.Cashbox {
	return &domain.Cashbox{
		CashboxID:     uuid.NewString(),
		RestaurantID:  suite.restaurantID,
		Name:          "Caja Principal",
		CurrentStatus: domain.CashboxClosed,
	}
}

// --- OpenCashbox ---

func (suite *CashboxServiceTestSuite) TestOpenCashbox_Success() {
	ctx := context.Background()
	box := suite.closedCashbox()

	suite.mockShiftRepo.On("FindOpenShiftByUser", ctx, suite.cashier.UserID).Return(suite.openShift(), nil).Once()
	suite.mockCashboxRepo.On("FindDefaultCashbox", ctx, suite.restaurantID, suite.cashier.UserID).Return(box, nil).Once()
	suite.mockCashboxRepo.On("OpenSession", ctx, mock.AnythingOfType("domain.CashboxSession"), mock.AnythingOfType("domain.CashMovement")).Return(nil).Once()

	session, err := suite.service.OpenCashbox(ctx, suite.cashier, dto.OpenCashboxRequest{
		OpeningAmount: decimal.NewFromInt(100000),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(session)
	suite.Equal(domain.SessionOpen, session.Status)
	suite.Equal(box.CashboxID, session.CashboxID)
	suite.True(session.OpeningAmount.Equal(decimal.NewFromInt(100000)))

	// The opening float must land in the ledger as an OPENING movement.
	openingArg := suite.mockCashboxRepo.Calls[1].Arguments.Get(2).(domain.CashMovement)
	suite.Equal(domain.MovementOpening, openingArg.MovementType)
	suite.True(openingArg.Amount.Equal(decimal.NewFromInt(100000)))
	suite.mockCashboxRepo.AssertExpectations(suite.T())
}

func (suite *CashboxServiceTestSuite) TestOpenCashbox_FailsWhenCashboxAlreadyOpen() {
	ctx := context.Background()
	box := suite.closedCashbox()
	box.CurrentStatus = domain.CashboxOpen

	suite.mockShiftRepo.On("FindOpenShiftByUser", ctx, suite.cashier.UserID).Return(suite.openShift(), nil).Once()
	suite.mockCashboxRepo.On("FindDefaultCashbox", ctx, suite.restaurantID, suite.cashier.UserID).Return(box, nil).Once()

	session, err := suite.service.OpenCashbox(ctx, suite.cashier, dto.OpenCashboxRequest{
		OpeningAmount: decimal.NewFromInt(50000),
	})

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "ya está abierta")
	suite.mockCashboxRepo.AssertNotCalled(suite.T(), "OpenSession", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CashboxServiceTestSuite) TestOpenCashbox_FailsWithoutOpenShift() {
	ctx := context.Background()

	suite.mockShiftRepo.On("FindOpenShiftByUser", ctx, suite.cashier.UserID).Return(nil, apperrors.ErrNotFound).Once()

	session, err := suite.service.OpenCashbox(ctx, suite.cashier, dto.OpenCashboxRequest{
		OpeningAmount: decimal.NewFromInt(50000),
	})

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "turno activo")
}

func (suite *CashboxServiceTestSuite) TestOpenCashbox_RejectsNegativeOpeningAmount() {
	ctx := context.Background()

	session, err := suite.service.OpenCashbox(ctx, suite.cashier, dto.OpenCashboxRequest{
		OpeningAmount: decimal.NewFromInt(-1000),
	})

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CashboxServiceTestSuite) TestOpenCashbox_KitchenRoleForbidden() {
	ctx := context.Background()
	cook := &domain.User{
		UserID:       uuid.NewString(),
		RestaurantID: &suite.restaurantID,
		Role:         domain.RoleKitchen,
	}

	_, err := suite.service.OpenCashbox(ctx, cook, dto.OpenCashboxRequest{
		OpeningAmount: decimal.NewFromInt(1000),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CashboxServiceTestSuite) TestOpenCashbox_DuplicateFromRace() {
	ctx := context.Background()
	box := suite.closedCashbox()

	suite.mockShiftRepo.On("FindOpenShiftByUser", ctx, suite.cashier.UserID).Return(suite.openShift(), nil).Once()
	suite.mockCashboxRepo.On("FindDefaultCashbox", ctx, suite.restaurantID, suite.cashier.UserID).Return(box, nil).Once()
	suite.mockCashboxRepo.On("OpenSession", ctx, mock.AnythingOfType("domain.CashboxSession"), mock.AnythingOfType("domain.CashMovement")).Return(apperrors.ErrDuplicate).Once()

	session, err := suite.service.OpenCashbox(ctx, suite.cashier, dto.OpenCashboxRequest{
		OpeningAmount: decimal.NewFromInt(100000),
	})

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- CloseCashbox ---

func (suite *CashboxServiceTestSuite) TestCloseCashbox_ReportsDifference() {
	ctx := context.Background()
	sessionID := uuid.NewString()
	shiftID := uuid.NewString()

	// Ledger: 100000 opening + 50000 cash sale - 20000 withdrawal = 130000.
	// Counting 125000 at close leaves the till 5000 short.
	systemAmount := decimal.NewFromInt(130000)
	closingAmount := decimal.NewFromInt(125000)

	suite.mockCashboxRepo.On("FindSessionByID", ctx, sessionID).Return(&domain.CashboxSession{
		SessionID: sessionID,
		ShiftID:   shiftID,
		UserID:    suite.cashier.UserID,
		Status:    domain.SessionOpen,
	}, nil).Once()
	suite.mockCashboxRepo.On("CloseSession", ctx, sessionID, closingAmount, "faltante", suite.cashier.UserID, mock.AnythingOfType("time.Time")).Return(&domain.CashboxSession{
		SessionID:     sessionID,
		ShiftID:       shiftID,
		UserID:        suite.cashier.UserID,
		Status:        domain.SessionClosed,
		ClosingAmount: &closingAmount,
		SystemAmount:  &systemAmount,
	}, nil).Once()
	suite.mockShiftRepo.On("CloseShift", ctx, shiftID, mock.AnythingOfType("time.Time"), suite.cashier.UserID).Return(nil).Once()

	closed, err := suite.service.CloseCashbox(ctx, suite.cashier, sessionID, dto.CloseCashboxRequest{
		ClosingAmount: closingAmount,
		Notes:         "faltante",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(closed)
	suite.Equal(domain.SessionClosed, closed.Status)
	suite.True(closed.SystemAmount.Equal(decimal.NewFromInt(130000)))
	suite.True(closed.ClosingAmount.Sub(*closed.SystemAmount).Equal(decimal.NewFromInt(-5000)))
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *CashboxServiceTestSuite) TestCloseCashbox_AlreadyClosed() {
	ctx := context.Background()
	sessionID := uuid.NewString()

	suite.mockCashboxRepo.On("FindSessionByID", ctx, sessionID).Return(&domain.CashboxSession{
		SessionID: sessionID,
		UserID:    suite.cashier.UserID,
		Status:    domain.SessionClosed,
	}, nil).Once()

	closed, err := suite.service.CloseCashbox(ctx, suite.cashier, sessionID, dto.CloseCashboxRequest{
		ClosingAmount: decimal.NewFromInt(1000),
	})

	suite.Require().Error(err)
	suite.Nil(closed)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockCashboxRepo.AssertNotCalled(suite.T(), "CloseSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CashboxServiceTestSuite) TestCloseCashbox_NonOwnerWithoutAuditPermForbidden() {
	ctx := context.Background()
	sessionID := uuid.NewString()
	waiter := &domain.User{
		UserID:       uuid.NewString(),
		RestaurantID: &suite.restaurantID,
		Role:         domain.RoleWaiter,
	}

	suite.mockCashboxRepo.On("FindSessionByID", ctx, sessionID).Return(&domain.CashboxSession{
		SessionID: sessionID,
		UserID:    suite.cashier.UserID,
		Status:    domain.SessionOpen,
	}, nil).Once()

	_, err := suite.service.CloseCashbox(ctx, waiter, sessionID, dto.CloseCashboxRequest{
		ClosingAmount: decimal.NewFromInt(1000),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CashboxServiceTestSuite) TestCloseCashbox_ManagerMayCloseAnotherUsersSession() {
	ctx := context.Background()
	sessionID := uuid.NewString()
	shiftID := uuid.NewString()
	closingAmount := decimal.NewFromInt(80000)
	systemAmount := decimal.NewFromInt(80000)

	suite.mockCashboxRepo.On("FindSessionByID", ctx, sessionID).Return(&domain.CashboxSession{
		SessionID: sessionID,
		ShiftID:   shiftID,
		UserID:    suite.cashier.UserID,
		Status:    domain.SessionOpen,
	}, nil).Once()
	suite.mockCashboxRepo.On("CloseSession", ctx, sessionID, closingAmount, "", suite.admin.UserID, mock.AnythingOfType("time.Time")).Return(&domain.CashboxSession{
		SessionID:     sessionID,
		ShiftID:       shiftID,
		UserID:        suite.cashier.UserID,
		Status:        domain.SessionClosed,
		ClosingAmount: &closingAmount,
		SystemAmount:  &systemAmount,
	}, nil).Once()
	suite.mockShiftRepo.On("CloseShift", ctx, shiftID, mock.AnythingOfType("time.Time"), suite.admin.UserID).Return(nil).Once()

	closed, err := suite.service.CloseCashbox(ctx, suite.admin, sessionID, dto.CloseCashboxRequest{
		ClosingAmount: closingAmount,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(closed)
	suite.Equal(domain.SessionClosed, closed.Status)
}

// --- RegisterMovement ---

func (suite *CashboxServiceTestSuite) TestRegisterMovement_Success() {
	ctx := context.Background()
	sessionID := uuid.NewString()

	suite.mockCashboxRepo.On("FindSessionByID", ctx, sessionID).Return(&domain.CashboxSession{
		SessionID: sessionID,
		UserID:    suite.cashier.UserID,
		Status:    domain.SessionOpen,
	}, nil).Once()
	suite.mockCashboxRepo.On("SaveMovement", ctx, mock.AnythingOfType("domain.CashMovement")).Return(nil).Once()

	movement, err := suite.service.RegisterMovement(ctx, suite.cashier, sessionID, dto.MovementRequest{
		MovementType: "WITHDRAWAL",
		Amount:       decimal.NewFromInt(20000),
		Description:  "Pago proveedor",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)
	suite.Equal(domain.MovementWithdrawal, movement.MovementType)
	suite.True(movement.Amount.Equal(decimal.NewFromInt(20000)))
}

func (suite *CashboxServiceTestSuite) TestRegisterMovement_RejectsClosedSession() {
	ctx := context.Background()
	sessionID := uuid.NewString()

	suite.mockCashboxRepo.On("FindSessionByID", ctx, sessionID).Return(&domain.CashboxSession{
		SessionID: sessionID,
		Status:    domain.SessionClosed,
	}, nil).Once()

	movement, err := suite.service.RegisterMovement(ctx, suite.cashier, sessionID, dto.MovementRequest{
		MovementType: "DEPOSIT",
		Amount:       decimal.NewFromInt(5000),
	})

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockCashboxRepo.AssertNotCalled(suite.T(), "SaveMovement", mock.Anything, mock.Anything)
}

func (suite *CashboxServiceTestSuite) TestRegisterMovement_RefundDebitsTheTill() {
	ctx := context.Background()
	sessionID := uuid.NewString()

	suite.mockCashboxRepo.On("FindSessionByID", ctx, sessionID).Return(&domain.CashboxSession{
		SessionID: sessionID,
		UserID:    suite.cashier.UserID,
		Status:    domain.SessionOpen,
	}, nil).Once()
	suite.mockCashboxRepo.On("SaveMovement", ctx, mock.AnythingOfType("domain.CashMovement")).Return(nil).Once()

	movement, err := suite.service.RegisterMovement(ctx, suite.cashier, sessionID, dto.MovementRequest{
		MovementType: "REFUND",
		Amount:       decimal.NewFromInt(12000),
		Description:  "Devolución orden equivocada",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)
	suite.Equal(domain.MovementRefund, movement.MovementType)
	suite.False(cashledger.IsCredit(movement.MovementType))
}

func (suite *CashboxServiceTestSuite) TestRegisterMovement_RejectsReservedTypes() {
	ctx := context.Background()

	// SALE and OPENING entries come only from order settlement and session open.
	for _, movementType := range []string{"SALE", "OPENING"} {
		_, err := suite.service.RegisterMovement(ctx, suite.cashier, uuid.NewString(), dto.MovementRequest{
			MovementType: movementType,
			Amount:       decimal.NewFromInt(1000),
		})
		suite.Require().Error(err, "type %s must be rejected", movementType)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
}

// --- AuditCashbox ---

func (suite *CashboxServiceTestSuite) TestAuditCashbox_ComputesDifferenceWithoutMutatingSession() {
	ctx := context.Background()
	sessionID := uuid.NewString()

	suite.mockCashboxRepo.On("FindSessionByID", ctx, sessionID).Return(&domain.CashboxSession{
		SessionID: sessionID,
		UserID:    suite.cashier.UserID,
		Status:    domain.SessionOpen,
	}, nil).Once()
	suite.mockCashboxRepo.On("ListMovementsBySession", ctx, sessionID).Return([]domain.CashMovement{
		{MovementType: domain.MovementOpening, Amount: decimal.NewFromInt(100000)},
		{MovementType: domain.MovementSale, Amount: decimal.NewFromInt(50000)},
		{MovementType: domain.MovementWithdrawal, Amount: decimal.NewFromInt(20000)},
	}, nil).Once()
	suite.mockCashboxRepo.On("SaveAudit", ctx, mock.AnythingOfType("domain.CashboxAudit")).Return(nil).Once()

	audit, err := suite.service.AuditCashbox(ctx, suite.admin, sessionID, dto.AuditRequest{
		CountedAmount: decimal.NewFromInt(125000),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(audit)
	suite.True(audit.SystemAmount.Equal(decimal.NewFromInt(130000)))
	suite.True(audit.Difference.Equal(decimal.NewFromInt(-5000)))

	// An audit is a snapshot: the session and its ledger stay untouched.
	suite.mockCashboxRepo.AssertNotCalled(suite.T(), "CloseSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockCashboxRepo.AssertNotCalled(suite.T(), "SaveMovement", mock.Anything, mock.Anything)
}

func (suite *CashboxServiceTestSuite) TestAuditCashbox_CashierForbidden() {
	ctx := context.Background()

	_, err := suite.service.AuditCashbox(ctx, suite.cashier, uuid.NewString(), dto.AuditRequest{
		CountedAmount: decimal.NewFromInt(1000),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestCashboxServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashboxServiceTestSuite))
}
