package dto

import (
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PayOrderRequest defines data for settling an order at the counter.
type PayOrderRequest struct {
	Method string `json:"method" binding:"required,oneof=CASH CARD TRANSFER"`
}

// PaymentResponse defines data returned for a payment.
type PaymentResponse struct {
	PaymentID            string          `json:"paymentID"`
	OrderID              string          `json:"orderID"`
	Method               string          `json:"method"`
	Amount               decimal.Decimal `json:"amount"`
	CashboxSessionID     *string         `json:"cashboxSessionID,omitempty"`
	GatewayReference     string          `json:"gatewayReference,omitempty"`
	GatewayTransactionID string          `json:"gatewayTransactionID,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts domain.Payment to DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:            p.PaymentID,
		OrderID:              p.OrderID,
		Method:               string(p.Method),
		Amount:               p.Amount,
		CashboxSessionID:     p.CashboxSessionID,
		GatewayReference:     p.GatewayReference,
		GatewayTransactionID: p.GatewayTransactionID,
		CreatedAt:            p.CreatedAt,
	}
}

// WompiTransaction is the transaction block inside a gateway event.
// AmountInCents follows Wompi's convention of integer minor units.
type WompiTransaction struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	Reference     string `json:"reference"`
	AmountInCents int64  `json:"amount_in_cents"`
	PaymentMethod string `json:"payment_method_type"`
}

// WompiEventData wraps the transaction in a gateway event.
type WompiEventData struct {
	Transaction WompiTransaction `json:"transaction"`
}

// WompiEvent is the webhook body posted by the payment gateway.
type WompiEvent struct {
	Event string         `json:"event"`
	Data  WompiEventData `json:"data"`
}

// SignedFields returns the transaction fields covered by the event signature,
// keyed the way the gateway names them.
func (e WompiEvent) SignedFields() map[string]string {
	return map[string]string{
		"transaction.id":        e.Data.Transaction.ID,
		"transaction.status":    e.Data.Transaction.Status,
		"transaction.reference": e.Data.Transaction.Reference,
	}
}
