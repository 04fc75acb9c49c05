package domain

import "time"

// ReservationStatus is the reservation lifecycle state.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationSeated    ReservationStatus = "SEATED"
)

// Reservation is a booking for a future visit.
type Reservation struct {
	ReservationID string            `json:"reservationID"` // Primary Key (UUID)
	RestaurantID  string            `json:"restaurantID"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	PartySize     int               `json:"partySize"`
	ReservedFor   time.Time         `json:"reservedFor"`
	Status        ReservationStatus `json:"status"`
	Notes         string            `json:"notes"`
	AuditFields
}
