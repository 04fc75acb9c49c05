package services

import (
	"context"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// ShiftSvcFacade defines operations for worker shifts.
type ShiftSvcFacade interface {
	// StartShift clocks the user into a shift for the given definition.
	// Rejects with ErrValidation when the user already has an open shift.
	StartShift(ctx context.Context, user *domain.User, definitionID string) (*domain.Shift, error)

	// CloseShift marks the shift closed. Called from the cashbox close cascade.
	CloseShift(ctx context.Context, shiftID string, closedBy string) error

	// GetActiveShift retrieves the user's currently open shift, or ErrNotFound.
	GetActiveShift(ctx context.Context, userID string) (*domain.Shift, error)

	// ListShifts retrieves a paginated shift history for a restaurant.
	ListShifts(ctx context.Context, restaurantID string, limit, offset int) ([]domain.Shift, error)
}
