package domain

import "time"

// ShiftStatus indicates whether a worker is currently clocked in.
type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "OPEN"
	ShiftClosed ShiftStatus = "CLOSED"
)

// Shift is one worker's clocked-in time window.
// Invariant (enforced by a partial unique index): at most one OPEN shift per user.
type Shift struct {
	ShiftID           string      `json:"shiftID"` // Primary Key (UUID)
	UserID            string      `json:"userID"`
	RestaurantID      string      `json:"restaurantID"`
	ShiftType         string      `json:"shiftType"` // Free-form label copied from the definition
	ShiftDefinitionID string      `json:"shiftDefinitionID"`
	Status            ShiftStatus `json:"status"`
	StartedAt         time.Time   `json:"startedAt"`
	EndedAt           *time.Time  `json:"endedAt,omitempty"`
	AuditFields
}
