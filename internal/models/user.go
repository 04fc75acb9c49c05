package models

import (
	"database/sql"
	"time"
)

// User is the database representation of a staff profile.
type User struct {
	UserID       string         `db:"user_id"`
	RestaurantID sql.NullString `db:"restaurant_id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
