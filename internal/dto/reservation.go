package dto

import (
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// CreateReservationRequest defines data for booking a table.
type CreateReservationRequest struct {
	CustomerName  string    `json:"customerName" binding:"required"`
	CustomerPhone string    `json:"customerPhone" binding:"required"`
	PartySize     int       `json:"partySize" binding:"required,gt=0"`
	ReservedFor   time.Time `json:"reservedFor" binding:"required"`
	Notes         string    `json:"notes"`
}

// UpdateReservationStatusRequest defines the target status for a reservation.
type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=CONFIRMED CANCELLED SEATED"`
}

// ReservationResponse defines data returned for a reservation.
type ReservationResponse struct {
	ReservationID string    `json:"reservationID"`
	RestaurantID  string    `json:"restaurantID"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	PartySize     int       `json:"partySize"`
	ReservedFor   time.Time `json:"reservedFor"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
}

// ToReservationResponse converts domain.Reservation to DTO.
func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ReservationID: r.ReservationID,
		RestaurantID:  r.RestaurantID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		PartySize:     r.PartySize,
		ReservedFor:   r.ReservedFor,
		Status:        string(r.Status),
		Notes:         r.Notes,
	}
}

// ListReservationsParams defines query parameters for the per-day listing.
type ListReservationsParams struct {
	Day string `form:"day"` // "2006-01-02"; defaults to today
}

// ListReservationsResponse wraps the list of reservations.
type ListReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// ToListReservationsResponse converts a slice of domain.Reservation to DTO.
func ToListReservationsResponse(rs []domain.Reservation) ListReservationsResponse {
	out := make([]ReservationResponse, len(rs))
	for i, r := range rs {
		out[i] = ToReservationResponse(&r)
	}
	return ListReservationsResponse{Reservations: out}
}
