package domain

import "github.com/shopspring/decimal"

// Category groups products on the menu.
type Category struct {
	CategoryID   string `json:"categoryID"` // Primary Key (UUID)
	RestaurantID string `json:"restaurantID"`
	Name         string `json:"name"`
	SortOrder    int    `json:"sortOrder"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// Product is a sellable catalog item.
type Product struct {
	ProductID    string          `json:"productID"` // Primary Key (UUID)
	RestaurantID string          `json:"restaurantID"`
	CategoryID   string          `json:"categoryID"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"imageURL"`
	SortOrder    int             `json:"sortOrder"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}
