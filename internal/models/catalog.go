package models

import "github.com/shopspring/decimal"

// Category groups products on the menu.
type Category struct {
	CategoryID   string `db:"category_id"`
	RestaurantID string `db:"restaurant_id"`
	Name         string `db:"name"`
	SortOrder    int    `db:"sort_order"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}

// Product is a sellable catalog item.
type Product struct {
	ProductID    string          `db:"product_id"`
	RestaurantID string          `db:"restaurant_id"`
	CategoryID   string          `db:"category_id"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	Price        decimal.Decimal `db:"price"`
	ImageURL     string          `db:"image_url"`
	SortOrder    int             `db:"sort_order"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
