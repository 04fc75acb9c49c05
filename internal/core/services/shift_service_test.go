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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockShiftRepository is a mock type for the ShiftRepositoryFacade interface
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindOpenShiftByUser(ctx context.Context, userID string) (*domain.Shift, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListShiftsByRestaurant(ctx context.Context, restaurantID string, limit int, offset int) ([]domain.Shift, error) {
	args := m.Called(ctx, restaurantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) CloseShift(ctx context.Context, shiftID string, endedAt time.Time, closedBy string) error {
	args := m.Called(ctx, shiftID, endedAt, closedBy)
	return args.Error(0)
}

// MockRestaurantRepository is a mock type for the RestaurantRepositoryFacade interface
type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) FindRestaurantByID(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) SaveRestaurant(ctx context.Context, restaurant domain.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) UpdateRestaurant(ctx context.Context, restaurant domain.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) FindShiftDefinitionByID(ctx context.Context, definitionID string) (*domain.ShiftDefinition, error) {
	args := m.Called(ctx, definitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftDefinition), args.Error(1)
}

func (m *MockRestaurantRepository) ListShiftDefinitions(ctx context.Context, restaurantID string) ([]domain.ShiftDefinition, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShiftDefinition), args.Error(1)
}

func (m *MockRestaurantRepository) SaveShiftDefinition(ctx context.Context, definition domain.ShiftDefinition) error {
	args := m.Called(ctx, definition)
	return args.Error(0)
}

func (m *MockRestaurantRepository) UpdateShiftDefinition(ctx context.Context, definition domain.ShiftDefinition) error {
	args := m.Called(ctx, definition)
	return args.Error(0)
}

func (m *MockRestaurantRepository) FindTableByID(ctx context.Context, tableID string) (*domain.Table, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockRestaurantRepository) FindTableByQRToken(ctx context.Context, qrToken string) (*domain.Table, error) {
	args := m.Called(ctx, qrToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockRestaurantRepository) ListTables(ctx context.Context, restaurantID string) ([]domain.Table, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Table), args.Error(1)
}

func (m *MockRestaurantRepository) SaveTable(ctx context.Context, table domain.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockRestaurantRepository) UpdateTable(ctx context.Context, table domain.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

// --- Test Suite Setup ---

type ShiftServiceTestSuite struct {
	suite.Suite
	mockShiftRepo      *MockShiftRepository
	mockRestaurantRepo *MockRestaurantRepository
	service            portssvc.ShiftSvcFacade
	restaurantID       string
	user               *domain.User
}

func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.mockRestaurantRepo = new(MockRestaurantRepository)
	suite.service = services.NewShiftService(suite.mockShiftRepo, suite.mockRestaurantRepo)
	suite.restaurantID = uuid.NewString()
	suite.user = &domain.User{
		UserID:       uuid.NewString(),
		RestaurantID: &suite.restaurantID,
		Role:         domain.RoleWaiter,
	}
}

// --- Test Cases ---

func (suite *ShiftServiceTestSuite) TestStartShift_Success() {
	ctx := context.Background()
	definitionID := uuid.NewString()

	suite.mockShiftRepo.On("FindOpenShiftByUser", ctx, suite.user.UserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRestaurantRepo.On("FindShiftDefinitionByID", ctx, definitionID).Return(&domain.ShiftDefinition{
		DefinitionID: definitionID,
		RestaurantID: suite.restaurantID,
		Name:         "Turno Mañana",
		IsActive:     true,
	}, nil).Once()
	suite.mockShiftRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.Shift")).Return(nil).Once()

	shift, err := suite.service.StartShift(ctx, suite.user, definitionID)

	suite.Require().NoError(err)
	suite.Require().NotNil(shift)
	suite.Equal(domain.ShiftOpen, shift.Status)
	suite.Equal("Turno Mañana", shift.ShiftType)
	suite.Equal(suite.user.UserID, shift.UserID)
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestStartShift_RejectsSecondOpenShift() {
	ctx := context.Background()
	definitionID := uuid.NewString()

	suite.mockShiftRepo.On("FindOpenShiftByUser", ctx, suite.user.UserID).Return(&domain.Shift{
		ShiftID: uuid.NewString(),
		UserID:  suite.user.UserID,
		Status:  domain.ShiftOpen,
	}, nil).Once()

	shift, err := suite.service.StartShift(ctx, suite.user, definitionID)

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Ya tienes un turno activo")
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "SaveShift", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestStartShift_DuplicateFromRace() {
	ctx := context.Background()
	definitionID := uuid.NewString()

	suite.mockShiftRepo.On("FindOpenShiftByUser", ctx, suite.user.UserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRestaurantRepo.On("FindShiftDefinitionByID", ctx, definitionID).Return(&domain.ShiftDefinition{
		DefinitionID: definitionID,
		RestaurantID: suite.restaurantID,
		Name:         "Turno Tarde",
		IsActive:     true,
	}, nil).Once()
	// The partial unique index catches the race the read missed.
	suite.mockShiftRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.Shift")).Return(apperrors.ErrDuplicate).Once()

	shift, err := suite.service.StartShift(ctx, suite.user, definitionID)

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ShiftServiceTestSuite) TestStartShift_InactiveDefinition() {
	ctx := context.Background()
	definitionID := uuid.NewString()

	suite.mockShiftRepo.On("FindOpenShiftByUser", ctx, suite.user.UserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRestaurantRepo.On("FindShiftDefinitionByID", ctx, definitionID).Return(&domain.ShiftDefinition{
		DefinitionID: definitionID,
		RestaurantID: suite.restaurantID,
		IsActive:     false,
	}, nil).Once()

	_, err := suite.service.StartShift(ctx, suite.user, definitionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ShiftServiceTestSuite) TestStartShift_NoRestaurantAssignment() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Role: domain.RoleWaiter}

	_, err := suite.service.StartShift(ctx, user, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ShiftServiceTestSuite) TestCloseShift_Unconditional() {
	ctx := context.Background()
	shiftID := uuid.NewString()

	suite.mockShiftRepo.On("CloseShift", ctx, shiftID, mock.AnythingOfType("time.Time"), suite.user.UserID).Return(nil).Once()

	err := suite.service.CloseShift(ctx, shiftID, suite.user.UserID)

	suite.Require().NoError(err)
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGetActiveShift_NotFound() {
	ctx := context.Background()

	suite.mockShiftRepo.On("FindOpenShiftByUser", ctx, suite.user.UserID).Return(nil, apperrors.ErrNotFound).Once()

	shift, err := suite.service.GetActiveShift(ctx, suite.user.UserID)

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
