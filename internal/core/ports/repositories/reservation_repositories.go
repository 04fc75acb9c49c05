package repositories

import (
	"context"
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// ReservationReader defines read operations for reservation data
type ReservationReader interface {
	// FindReservationByID retrieves a specific reservation.
	FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error)

	// ListReservationsByDay retrieves a restaurant's reservations whose
	// reserved_for falls within [dayStart, dayEnd), ordered by time.
	ListReservationsByDay(ctx context.Context, restaurantID string, dayStart, dayEnd time.Time) ([]domain.Reservation, error)
}

// ReservationWriter defines write operations for reservation data
type ReservationWriter interface {
	// SaveReservation persists a new reservation.
	SaveReservation(ctx context.Context, reservation domain.Reservation) error

	// UpdateReservationStatus conditionally advances a reservation from one
	// status to another. It returns apperrors.ErrConflict when the reservation
	// is no longer in the expected status.
	UpdateReservationStatus(ctx context.Context, reservationID string, from domain.ReservationStatus, to domain.ReservationStatus, updatedBy string, updatedAt time.Time) error
}

// ReservationRepositoryFacade combines all reservation-related repository interfaces
// This is a facade for clients that need access to all operations
type ReservationRepositoryFacade interface {
	ReservationReader
	ReservationWriter
}
