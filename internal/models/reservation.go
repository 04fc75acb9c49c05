package models

import "time"

// Reservation is a booking row.
type Reservation struct {
	ReservationID string    `db:"reservation_id"`
	RestaurantID  string    `db:"restaurant_id"`
	CustomerName  string    `db:"customer_name"`
	CustomerPhone string    `db:"customer_phone"`
	PartySize     int       `db:"party_size"`
	ReservedFor   time.Time `db:"reserved_for"`
	Status        string    `db:"status"`
	Notes         string    `db:"notes"`
	AuditFields
}

// LoyaltyAccount accumulates points per customer phone within a tenant.
type LoyaltyAccount struct {
	AccountID     string `db:"account_id"`
	RestaurantID  string `db:"restaurant_id"`
	CustomerPhone string `db:"customer_phone"`
	CustomerName  string `db:"customer_name"`
	Points        int64  `db:"points"`
	AuditFields
}
