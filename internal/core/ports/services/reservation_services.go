package services

import (
	"context"
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/sazonapp/pos_backend/internal/dto"
)

// ReservationSvcFacade defines operations for table reservations.
type ReservationSvcFacade interface {
	// CreateReservation books a table for a customer via the public site.
	CreateReservation(ctx context.Context, slug string, req dto.CreateReservationRequest) (*domain.Reservation, error)

	// ListReservations retrieves a restaurant's reservations for one day.
	ListReservations(ctx context.Context, restaurantID string, day time.Time) ([]domain.Reservation, error)

	// UpdateReservationStatus confirms, cancels, or seats a reservation.
	// Confirmations emit a customer notification event.
	UpdateReservationStatus(ctx context.Context, user *domain.User, reservationID string, next domain.ReservationStatus) (*domain.Reservation, error)
}
