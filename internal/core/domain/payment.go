package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how an order was paid.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentWompi    PaymentMethod = "WOMPI" // Online gateway
	PaymentTransfer PaymentMethod = "TRANSFER"
)

// IsValid reports whether the payment method is a known variant.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentWompi, PaymentTransfer:
		return true
	}
	return false
}

// Payment records a settled payment against an order.
// CashboxSessionID is set only for cash payments.
type Payment struct {
	PaymentID            string          `json:"paymentID"` // Primary Key (UUID)
	OrderID              string          `json:"orderID"`
	Method               PaymentMethod   `json:"method"`
	Amount               decimal.Decimal `json:"amount"`
	CashboxSessionID     *string         `json:"cashboxSessionID,omitempty"`
	GatewayReference     string          `json:"gatewayReference,omitempty"`
	GatewayTransactionID string          `json:"gatewayTransactionID,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	CreatedBy            string          `json:"createdBy"`
}

// GatewayStatus is the transaction status reported by the payment gateway.
type GatewayStatus string

const (
	GatewayApproved GatewayStatus = "APPROVED"
	GatewayDeclined GatewayStatus = "DECLINED"
	GatewayError    GatewayStatus = "ERROR"
	GatewayVoided   GatewayStatus = "VOIDED"
)
