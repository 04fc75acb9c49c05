package domain

// Restaurant is the tenant isolation boundary. Every other entity carries its ID.
type Restaurant struct {
	RestaurantID string `json:"restaurantID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Slug         string `json:"slug"` // Public URL slug for the online menu
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// ShiftDefinition is a named work schedule workers clock into ("Turno Mañana").
type ShiftDefinition struct {
	DefinitionID string `json:"definitionID"` // Primary Key (UUID)
	RestaurantID string `json:"restaurantID"`
	Name         string `json:"name"`
	StartTime    string `json:"startTime"` // "HH:MM", informational only
	EndTime      string `json:"endTime"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// Table is a physical table with a QR token used for dine-in self ordering.
type Table struct {
	TableID      string `json:"tableID"` // Primary Key (UUID)
	RestaurantID string `json:"restaurantID"`
	Name         string `json:"name"`
	QRToken      string `json:"qrToken"` // Opaque token embedded in the printed QR code
	IsActive     bool   `json:"isActive"`
	AuditFields
}
