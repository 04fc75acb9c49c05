package mapping

import (
	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/sazonapp/pos_backend/internal/models"
)

// ToDomainCashbox converts a model Cashbox to its domain form.
func ToDomainCashbox(m models.Cashbox) domain.Cashbox {
	return domain.Cashbox{
		CashboxID:     m.CashboxID,
		RestaurantID:  m.RestaurantID,
		Name:          m.Name,
		CurrentStatus: domain.CashboxStatus(m.CurrentStatus),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCashbox converts a domain Cashbox to its model form.
func ToModelCashbox(d domain.Cashbox) models.Cashbox {
	return models.Cashbox{
		CashboxID:     d.CashboxID,
		RestaurantID:  d.RestaurantID,
		Name:          d.Name,
		CurrentStatus: string(d.CurrentStatus),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashboxSession converts a model CashboxSession to its domain form.
func ToDomainCashboxSession(m models.CashboxSession) domain.CashboxSession {
	return domain.CashboxSession{
		SessionID:     m.SessionID,
		CashboxID:     m.CashboxID,
		ShiftID:       m.ShiftID,
		UserID:        m.UserID,
		OpeningAmount: m.OpeningAmount,
		ClosingAmount: m.ClosingAmount,
		SystemAmount:  m.SystemAmount,
		Status:        domain.SessionStatus(m.Status),
		OpenedAt:      m.OpenedAt,
		ClosedAt:      m.ClosedAt,
		OpeningNotes:  m.OpeningNotes,
		ClosingNotes:  m.ClosingNotes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCashboxSession converts a domain CashboxSession to its model form.
func ToModelCashboxSession(d domain.CashboxSession) models.CashboxSession {
	return models.CashboxSession{
		SessionID:     d.SessionID,
		CashboxID:     d.CashboxID,
		ShiftID:       d.ShiftID,
		UserID:        d.UserID,
		OpeningAmount: d.OpeningAmount,
		ClosingAmount: d.ClosingAmount,
		SystemAmount:  d.SystemAmount,
		Status:        string(d.Status),
		OpenedAt:      d.OpenedAt,
		ClosedAt:      d.ClosedAt,
		OpeningNotes:  d.OpeningNotes,
		ClosingNotes:  d.ClosingNotes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashMovement converts a model CashMovement to its domain form.
func ToDomainCashMovement(m models.CashMovement) domain.CashMovement {
	return domain.CashMovement{
		MovementID:   m.MovementID,
		SessionID:    m.SessionID,
		UserID:       m.UserID,
		MovementType: domain.MovementType(m.MovementType),
		Amount:       m.Amount,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
	}
}

// ToModelCashMovement converts a domain CashMovement to its model form.
func ToModelCashMovement(d domain.CashMovement) models.CashMovement {
	return models.CashMovement{
		MovementID:   d.MovementID,
		SessionID:    d.SessionID,
		UserID:       d.UserID,
		MovementType: string(d.MovementType),
		Amount:       d.Amount,
		Description:  d.Description,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainCashMovementSlice converts model movements to domain movements.
func ToDomainCashMovementSlice(ms []models.CashMovement) []domain.CashMovement {
	ds := make([]domain.CashMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashMovement(m)
	}
	return ds
}

// ToDomainCashboxAudit converts a model CashboxAudit to its domain form.
func ToDomainCashboxAudit(m models.CashboxAudit) domain.CashboxAudit {
	return domain.CashboxAudit{
		AuditID:       m.AuditID,
		SessionID:     m.SessionID,
		UserID:        m.UserID,
		CountedAmount: m.CountedAmount,
		SystemAmount:  m.SystemAmount,
		Difference:    m.Difference,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

// ToModelCashboxAudit converts a domain CashboxAudit to its model form.
func ToModelCashboxAudit(d domain.CashboxAudit) models.CashboxAudit {
	return models.CashboxAudit{
		AuditID:       d.AuditID,
		SessionID:     d.SessionID,
		UserID:        d.UserID,
		CountedAmount: d.CountedAmount,
		SystemAmount:  d.SystemAmount,
		Difference:    d.Difference,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainCashboxSessionSlice converts model sessions to domain sessions.
func ToDomainCashboxSessionSlice(ms []models.CashboxSession) []domain.CashboxSession {
	ds := make([]domain.CashboxSession, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashboxSession(m)
	}
	return ds
}

// ToDomainCashboxAuditSlice converts model audits to domain audits.
func ToDomainCashboxAuditSlice(ms []models.CashboxAudit) []domain.CashboxAudit {
	ds := make([]domain.CashboxAudit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashboxAudit(m)
	}
	return ds
}
