package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the order lifecycle state.
//
// Online orders start at PendingPayment and move to Paid via the gateway
// webhook; once paid they are immediately advanced to Pending for the kitchen.
type OrderStatus string

const (
	OrderPendingPayment OrderStatus = "pending_payment"
	OrderPaid           OrderStatus = "paid"
	OrderPending        OrderStatus = "pending" // Queued for the kitchen
	OrderPreparing      OrderStatus = "preparing"
	OrderReady          OrderStatus = "ready"
	OrderDelivered      OrderStatus = "delivered"
	OrderPaymentFailed  OrderStatus = "payment_failed"
	OrderCancelled      OrderStatus = "cancelled"
)

// OrderSource records which surface created the order.
type OrderSource string

const (
	SourcePOS    OrderSource = "POS"
	SourceOnline OrderSource = "ONLINE"
	SourceTable  OrderSource = "TABLE" // QR ordering from a table
)

// orderTransitions defines the legal status machine. Webhook-driven states
// (paid, payment_failed, cancelled) are reachable only from pending_payment.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPendingPayment: {OrderPaid, OrderPaymentFailed, OrderCancelled},
	OrderPaid:           {OrderPending},
	OrderPending:        {OrderPreparing, OrderCancelled},
	OrderPreparing:      {OrderReady, OrderCancelled},
	OrderReady:          {OrderDelivered},
}

// CanTransition reports whether moving from s to next is legal.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsPayable reports whether an order in this status can still be settled.
// Online orders pay from pending_payment; counter orders settle at the till
// at any point of the kitchen flow, including after delivery. The
// pay_order_atomic procedure enforces the same set.
func (s OrderStatus) IsPayable() bool {
	switch s {
	case OrderPaid, OrderCancelled, OrderPaymentFailed:
		return false
	}
	return true
}

// Order is a customer order with its item snapshot.
type Order struct {
	OrderID       string          `json:"orderID"` // Primary Key (UUID)
	RestaurantID  string          `json:"restaurantID"`
	TableID       *string         `json:"tableID,omitempty"`
	Source        OrderSource     `json:"source"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Status        OrderStatus     `json:"status"`
	Total         decimal.Decimal `json:"total"`
	Notes         string          `json:"notes"`
	Items         []OrderItem     `json:"items,omitempty"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
	AuditFields
}

// OrderItem snapshots the product name and price at order time so later
// catalog edits never change a historical order.
type OrderItem struct {
	ItemID      string          `json:"itemID"` // Primary Key (UUID)
	OrderID     string          `json:"orderID"`
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}
