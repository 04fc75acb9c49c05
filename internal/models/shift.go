package models

import "time"

// Shift is the database representation of a worker's clocked-in window.
type Shift struct {
	ShiftID           string     `db:"shift_id"`
	UserID            string     `db:"user_id"`
	RestaurantID      string     `db:"restaurant_id"`
	ShiftType         string     `db:"shift_type"`
	ShiftDefinitionID string     `db:"shift_definition_id"`
	Status            string     `db:"status"`
	StartedAt         time.Time  `db:"started_at"`
	EndedAt           *time.Time `db:"ended_at"`
	AuditFields
}

// ShiftDefinition is a named schedule workers clock into.
type ShiftDefinition struct {
	DefinitionID string `db:"definition_id"`
	RestaurantID string `db:"restaurant_id"`
	Name         string `db:"name"`
	StartTime    string `db:"start_time"`
	EndTime      string `db:"end_time"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
