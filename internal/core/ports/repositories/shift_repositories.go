package repositories

import (
	"context"
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// ShiftReader defines read operations for shift data
type ShiftReader interface {
	// FindShiftByID retrieves a specific shift by its unique identifier.
	FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// FindOpenShiftByUser retrieves the user's currently open shift, if any.
	FindOpenShiftByUser(ctx context.Context, userID string) (*domain.Shift, error)

	// ListShiftsByRestaurant retrieves a paginated list of shifts for a restaurant,
	// most recent first.
	ListShiftsByRestaurant(ctx context.Context, restaurantID string, limit int, offset int) ([]domain.Shift, error)
}

// ShiftWriter defines write operations for shift data
type ShiftWriter interface {
	// SaveShift persists a new shift. The partial unique index on open shifts
	// rejects a second OPEN shift for the same user.
	SaveShift(ctx context.Context, shift domain.Shift) error

	// CloseShift marks a shift CLOSED and stamps its end time.
	CloseShift(ctx context.Context, shiftID string, endedAt time.Time, closedBy string) error
}

// ShiftRepositoryFacade combines all shift-related repository interfaces
// This is a facade for clients that need access to all operations
type ShiftRepositoryFacade interface {
	ShiftReader
	ShiftWriter
}
