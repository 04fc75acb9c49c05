package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
)

// User-facing message when a worker tries to clock in twice. The frontend
// shows it verbatim.
const errShiftAlreadyOpenMsg = "Ya tienes un turno activo. Debes cerrarlo antes de iniciar uno nuevo."

// shiftService implements the ShiftSvcFacade interface
type shiftService struct {
	BaseService
	shiftRepo      portsrepo.ShiftRepositoryFacade
	restaurantRepo portsrepo.RestaurantRepositoryFacade
}

// NewShiftService creates a new shift service with the provided dependencies
func NewShiftService(shiftRepo portsrepo.ShiftRepositoryFacade, restaurantRepo portsrepo.RestaurantRepositoryFacade) portssvc.ShiftSvcFacade {
	return &shiftService{
		shiftRepo:      shiftRepo,
		restaurantRepo: restaurantRepo,
	}
}

var _ portssvc.ShiftSvcFacade = (*shiftService)(nil)

// StartShift clocks the user into a shift for the given definition.
func (s *shiftService) StartShift(ctx context.Context, user *domain.User, definitionID string) (*domain.Shift, error) {
	restaurantID, err := s.RequireRestaurant(user)
	if err != nil {
		return nil, err
	}

	// Reject early when the user already has an open shift. The partial unique
	// index backstops the race between this check and the insert.
	existing, err := s.shiftRepo.FindOpenShiftByUser(ctx, user.UserID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for open shift", slog.String("user_id", user.UserID))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, errShiftAlreadyOpenMsg)
	}

	definition, err := s.restaurantRepo.FindShiftDefinitionByID(ctx, definitionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: shift definition not found", apperrors.ErrValidation)
		}
		return nil, err
	}
	if !definition.IsActive || definition.RestaurantID != restaurantID {
		return nil, fmt.Errorf("%w: shift definition not available", apperrors.ErrValidation)
	}

	now := time.Now()
	shift := domain.Shift{
		ShiftID:           uuid.NewString(),
		UserID:            user.UserID,
		RestaurantID:      restaurantID,
		ShiftType:         definition.Name,
		ShiftDefinitionID: definition.DefinitionID,
		Status:            domain.ShiftOpen,
		StartedAt:         now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     user.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: user.UserID,
		},
	}

	if err := s.shiftRepo.SaveShift(ctx, shift); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race against another request from the same user.
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, errShiftAlreadyOpenMsg)
		}
		s.LogError(ctx, err, "Failed to save shift", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Shift started",
		slog.String("shift_id", shift.ShiftID),
		slog.String("user_id", user.UserID),
		slog.String("shift_type", shift.ShiftType))
	return &shift, nil
}

// CloseShift marks the shift closed. Called from the cashbox close cascade,
// so it is unconditional: closing an already closed shift is a no-op.
func (s *shiftService) CloseShift(ctx context.Context, shiftID string, closedBy string) error {
	if err := s.shiftRepo.CloseShift(ctx, shiftID, time.Now(), closedBy); err != nil {
		s.LogError(ctx, err, "Failed to close shift", slog.String("shift_id", shiftID))
		return err
	}
	s.LogInfo(ctx, "Shift closed", slog.String("shift_id", shiftID))
	return nil
}

// GetActiveShift retrieves the user's currently open shift.
func (s *shiftService) GetActiveShift(ctx context.Context, userID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindOpenShiftByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get active shift", slog.String("user_id", userID))
		}
		return nil, err
	}
	return shift, nil
}

// ListShifts retrieves a paginated shift history for a restaurant.
func (s *shiftService) ListShifts(ctx context.Context, restaurantID string, limit, offset int) ([]domain.Shift, error) {
	if limit <= 0 {
		limit = 20
	}
	shifts, err := s.shiftRepo.ListShiftsByRestaurant(ctx, restaurantID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shifts", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	if shifts == nil {
		return []domain.Shift{}, nil
	}
	return shifts, nil
}
