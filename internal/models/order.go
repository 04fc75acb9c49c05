package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Order is the database representation of a customer order.
type Order struct {
	OrderID       string          `db:"order_id"`
	RestaurantID  string          `db:"restaurant_id"`
	TableID       sql.NullString  `db:"table_id"`
	Source        string          `db:"source"`
	CustomerName  string          `db:"customer_name"`
	CustomerPhone string          `db:"customer_phone"`
	Status        string          `db:"status"`
	Total         decimal.Decimal `db:"total"`
	Notes         string          `db:"notes"`
	PaidAt        *time.Time      `db:"paid_at"`
	AuditFields
}

// OrderItem snapshots product name and price at order time.
type OrderItem struct {
	ItemID      string          `db:"item_id"`
	OrderID     string          `db:"order_id"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Quantity    int             `db:"quantity"`
	LineTotal   decimal.Decimal `db:"line_total"`
}

// Payment is a settled payment row.
type Payment struct {
	PaymentID            string          `db:"payment_id"`
	OrderID              string          `db:"order_id"`
	Method               string          `db:"method"`
	Amount               decimal.Decimal `db:"amount"`
	CashboxSessionID     sql.NullString  `db:"cashbox_session_id"`
	GatewayReference     string          `db:"gateway_reference"`
	GatewayTransactionID string          `db:"gateway_transaction_id"`
	CreatedAt            time.Time       `db:"created_at"`
	CreatedBy            string          `db:"created_by"`
}
