package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardKPIs is the aggregate snapshot returned by the get_dashboard_kpis
// stored procedure.
type DashboardKPIs struct {
	RestaurantID  string          `json:"restaurantID"`
	SalesToday    decimal.Decimal `json:"salesToday"`
	OrdersToday   int             `json:"ordersToday"`
	AverageTicket decimal.Decimal `json:"averageTicket"`
	OpenOrders    int             `json:"openOrders"`
	GeneratedAt   time.Time       `json:"generatedAt"`
}

// DailySales is one row of the get_sales_daily stored procedure.
type DailySales struct {
	Day        time.Time       `json:"day"`
	Total      decimal.Decimal `json:"total"`
	OrderCount int             `json:"orderCount"`
}

// TopProduct is one row of the get_top_products stored procedure.
type TopProduct struct {
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}
