package dto

import (
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardResponse represents today's headline numbers.
type DashboardResponse struct {
	SalesToday    decimal.Decimal `json:"salesToday"`
	OrdersToday   int             `json:"ordersToday"`
	AverageTicket decimal.Decimal `json:"averageTicket"`
	OpenOrders    int             `json:"openOrders"`
	GeneratedAt   time.Time       `json:"generatedAt"`
}

// ToDashboardResponse converts domain.DashboardKPIs to DTO.
func ToDashboardResponse(k *domain.DashboardKPIs) DashboardResponse {
	return DashboardResponse{
		SalesToday:    k.SalesToday,
		OrdersToday:   k.OrdersToday,
		AverageTicket: k.AverageTicket,
		OpenOrders:    k.OpenOrders,
		GeneratedAt:   k.GeneratedAt,
	}
}

// DailySalesRow is one day of the sales series.
type DailySalesRow struct {
	Day        string          `json:"day"`
	Total      decimal.Decimal `json:"total"`
	OrderCount int             `json:"orderCount"`
}

// SalesDailyResponse represents the sales-per-day report.
type SalesDailyResponse struct {
	FromDate string          `json:"fromDate"`
	ToDate   string          `json:"toDate"`
	Rows     []DailySalesRow `json:"rows"`
}

// ToSalesDailyResponse converts daily sales rows to a DTO response.
func ToSalesDailyResponse(rows []domain.DailySales, from, to time.Time) SalesDailyResponse {
	resp := SalesDailyResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Rows:     make([]DailySalesRow, len(rows)),
	}
	for i, r := range rows {
		resp.Rows[i] = DailySalesRow{
			Day:        r.Day.Format("2006-01-02"),
			Total:      r.Total,
			OrderCount: r.OrderCount,
		}
	}
	return resp
}

// TopProductRow is one best seller.
type TopProductRow struct {
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// TopProductsResponse represents the best sellers report.
type TopProductsResponse struct {
	FromDate string          `json:"fromDate"`
	ToDate   string          `json:"toDate"`
	Products []TopProductRow `json:"products"`
}

// ToTopProductsResponse converts top product rows to a DTO response.
func ToTopProductsResponse(rows []domain.TopProduct, from, to time.Time) TopProductsResponse {
	resp := TopProductsResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Products: make([]TopProductRow, len(rows)),
	}
	for i, r := range rows {
		resp.Products[i] = TopProductRow{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			Revenue:     r.Revenue,
		}
	}
	return resp
}

// ReportRangeParams defines query parameters for date-ranged reports.
type ReportRangeParams struct {
	From  string `form:"from"` // "2006-01-02"; defaults to 30 days ago
	To    string `form:"to"`   // "2006-01-02"; defaults to today
	Limit int    `form:"limit,default=10"`
}
