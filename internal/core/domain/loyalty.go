package domain

// LoyaltyAccount accumulates points for a customer, keyed by phone number
// within a tenant. Points accrue when an order is paid.
type LoyaltyAccount struct {
	AccountID     string `json:"accountID"` // Primary Key (UUID)
	RestaurantID  string `json:"restaurantID"`
	CustomerPhone string `json:"customerPhone"`
	CustomerName  string `json:"customerName"`
	Points        int64  `json:"points"`
	AuditFields
}
