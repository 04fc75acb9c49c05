package dto

import (
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one line of a new order. Prices come from the catalog,
// never from the client.
type OrderItemRequest struct {
	ProductID string `json:"productID" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest defines data for a staff-created POS order.
type CreateOrderRequest struct {
	TableID       *string            `json:"tableID"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Notes         string             `json:"notes"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateOnlineOrderRequest defines data for a customer-created online order.
// The restaurant is resolved from the public slug in the URL.
type CreateOnlineOrderRequest struct {
	CustomerName  string             `json:"customerName" binding:"required"`
	CustomerPhone string             `json:"customerPhone" binding:"required"`
	Notes         string             `json:"notes"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateTableOrderRequest defines data for a dine-in QR order. The table is
// resolved from the QR token.
type CreateTableOrderRequest struct {
	QRToken       string             `json:"qrToken" binding:"required"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Notes         string             `json:"notes"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// AdvanceOrderRequest defines the target status for a kitchen transition.
type AdvanceOrderRequest struct {
	Status string `json:"status" binding:"required,oneof=pending preparing ready delivered cancelled"`
}

// OrderItemResponse defines data returned for an order line.
type OrderItemResponse struct {
	ItemID      string          `json:"itemID"`
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// OrderResponse defines data returned for an order.
type OrderResponse struct {
	OrderID       string              `json:"orderID"`
	RestaurantID  string              `json:"restaurantID"`
	TableID       *string             `json:"tableID,omitempty"`
	Source        string              `json:"source"`
	CustomerName  string              `json:"customerName,omitempty"`
	CustomerPhone string              `json:"customerPhone,omitempty"`
	Status        string              `json:"status"`
	Total         decimal.Decimal     `json:"total"`
	Notes         string              `json:"notes,omitempty"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	PaidAt        *time.Time          `json:"paidAt,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// ToOrderResponse converts domain.Order to DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ItemID:      it.ItemID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			LineTotal:   it.LineTotal,
		}
	}
	return OrderResponse{
		OrderID:       o.OrderID,
		RestaurantID:  o.RestaurantID,
		TableID:       o.TableID,
		Source:        string(o.Source),
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Status:        string(o.Status),
		Total:         o.Total,
		Notes:         o.Notes,
		Items:         items,
		PaidAt:        o.PaidAt,
		CreatedAt:     o.CreatedAt,
	}
}

// ListOrdersParams defines query parameters for listing orders.
type ListOrdersParams struct {
	Status string `form:"status"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// ListOrdersResponse wraps a list of orders.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ToListOrdersResponse converts a slice of domain.Order to DTO.
func ToListOrdersResponse(orders []domain.Order) ListOrdersResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = ToOrderResponse(&o)
	}
	return ListOrdersResponse{Orders: out}
}
