package mapping

import (
	"database/sql"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/sazonapp/pos_backend/internal/models"
)

// ToModelOrder converts a domain Order to its model form (items excluded,
// they are persisted separately).
func ToModelOrder(d domain.Order) models.Order {
	m := models.Order{
		OrderID:       d.OrderID,
		RestaurantID:  d.RestaurantID,
		Source:        string(d.Source),
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Status:        string(d.Status),
		Total:         d.Total,
		Notes:         d.Notes,
		PaidAt:        d.PaidAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.TableID != nil {
		m.TableID = sql.NullString{String: *d.TableID, Valid: true}
	}
	return m
}

// ToDomainOrder converts a model Order to its domain form.
func ToDomainOrder(m models.Order) domain.Order {
	d := domain.Order{
		OrderID:       m.OrderID,
		RestaurantID:  m.RestaurantID,
		Source:        domain.OrderSource(m.Source),
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		Status:        domain.OrderStatus(m.Status),
		Total:         m.Total,
		Notes:         m.Notes,
		PaidAt:        m.PaidAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.TableID.Valid {
		tableID := m.TableID.String
		d.TableID = &tableID
	}
	return d
}

// ToDomainOrderSlice converts model Orders to domain Orders.
func ToDomainOrderSlice(ms []models.Order) []domain.Order {
	ds := make([]domain.Order, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrder(m)
	}
	return ds
}

// ToModelOrderItem converts a domain OrderItem to its model form.
func ToModelOrderItem(d domain.OrderItem) models.OrderItem {
	return models.OrderItem{
		ItemID:      d.ItemID,
		OrderID:     d.OrderID,
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		UnitPrice:   d.UnitPrice,
		Quantity:    d.Quantity,
		LineTotal:   d.LineTotal,
	}
}

// ToDomainOrderItem converts a model OrderItem to its domain form.
func ToDomainOrderItem(m models.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		ItemID:      m.ItemID,
		OrderID:     m.OrderID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		UnitPrice:   m.UnitPrice,
		Quantity:    m.Quantity,
		LineTotal:   m.LineTotal,
	}
}

// ToDomainOrderItemSlice converts model OrderItems to domain OrderItems.
func ToDomainOrderItemSlice(ms []models.OrderItem) []domain.OrderItem {
	ds := make([]domain.OrderItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrderItem(m)
	}
	return ds
}

// ToDomainPayment converts a model Payment to its domain form.
func ToDomainPayment(m models.Payment) domain.Payment {
	d := domain.Payment{
		PaymentID:            m.PaymentID,
		OrderID:              m.OrderID,
		Method:               domain.PaymentMethod(m.Method),
		Amount:               m.Amount,
		GatewayReference:     m.GatewayReference,
		GatewayTransactionID: m.GatewayTransactionID,
		CreatedAt:            m.CreatedAt,
		CreatedBy:            m.CreatedBy,
	}
	if m.CashboxSessionID.Valid {
		sessionID := m.CashboxSessionID.String
		d.CashboxSessionID = &sessionID
	}
	return d
}

// ToDomainPaymentSlice converts model Payments to domain Payments.
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
