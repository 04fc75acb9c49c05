package models

// Restaurant is the tenant row.
type Restaurant struct {
	RestaurantID string `db:"restaurant_id"`
	Name         string `db:"name"`
	Slug         string `db:"slug"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}

// Table is a physical table with a QR ordering token.
type Table struct {
	TableID      string `db:"table_id"`
	RestaurantID string `db:"restaurant_id"`
	Name         string `db:"name"`
	QRToken      string `db:"qr_token"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
