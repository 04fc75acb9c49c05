package dto

import (
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenCashboxRequest defines the data for opening the till.
type OpenCashboxRequest struct {
	OpeningAmount decimal.Decimal `json:"openingAmount" binding:"required"`
	Notes         string          `json:"notes"`
}

// CloseCashboxRequest defines the data for closing the till.
type CloseCashboxRequest struct {
	ClosingAmount decimal.Decimal `json:"closingAmount" binding:"required"`
	Notes         string          `json:"notes"`
}

// MovementRequest defines the data for a manual ledger entry.
type MovementRequest struct {
	MovementType string          `json:"movementType" binding:"required,oneof=DEPOSIT WITHDRAWAL REFUND"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Description  string          `json:"description" binding:"required"`
}

// AuditRequest defines the data for a partial cash count.
type AuditRequest struct {
	CountedAmount decimal.Decimal `json:"countedAmount" binding:"required"`
	Notes         string          `json:"notes"`
}

// SessionResponse defines data returned for a cashbox session.
type SessionResponse struct {
	SessionID     string           `json:"sessionID"`
	CashboxID     string           `json:"cashboxID"`
	ShiftID       string           `json:"shiftID"`
	UserID        string           `json:"userID"`
	OpeningAmount decimal.Decimal  `json:"openingAmount"`
	ClosingAmount *decimal.Decimal `json:"closingAmount,omitempty"`
	SystemAmount  *decimal.Decimal `json:"systemAmount,omitempty"`
	Difference    *decimal.Decimal `json:"difference,omitempty"`
	Status        string           `json:"status"`
	OpenedAt      time.Time        `json:"openedAt"`
	ClosedAt      *time.Time       `json:"closedAt,omitempty"`
	OpeningNotes  string           `json:"openingNotes,omitempty"`
	ClosingNotes  string           `json:"closingNotes,omitempty"`
}

// ToSessionResponse converts domain.CashboxSession to DTO. Difference is
// derived from closing and system amounts when both are present.
func ToSessionResponse(s *domain.CashboxSession) SessionResponse {
	resp := SessionResponse{
		SessionID:     s.SessionID,
		CashboxID:     s.CashboxID,
		ShiftID:       s.ShiftID,
		UserID:        s.UserID,
		OpeningAmount: s.OpeningAmount,
		ClosingAmount: s.ClosingAmount,
		SystemAmount:  s.SystemAmount,
		Status:        string(s.Status),
		OpenedAt:      s.OpenedAt,
		ClosedAt:      s.ClosedAt,
		OpeningNotes:  s.OpeningNotes,
		ClosingNotes:  s.ClosingNotes,
	}
	if s.ClosingAmount != nil && s.SystemAmount != nil {
		diff := s.ClosingAmount.Sub(*s.SystemAmount)
		resp.Difference = &diff
	}
	return resp
}

// CashboxStatusResponse describes the till and its open session, if any.
type CashboxStatusResponse struct {
	CashboxID     string           `json:"cashboxID"`
	Name          string           `json:"name"`
	CurrentStatus string           `json:"currentStatus"`
	Session       *SessionResponse `json:"session,omitempty"`
}

// ToCashboxStatusResponse converts a cashbox and its open session to DTO.
func ToCashboxStatusResponse(box *domain.Cashbox, session *domain.CashboxSession) CashboxStatusResponse {
	resp := CashboxStatusResponse{
		CashboxID:     box.CashboxID,
		Name:          box.Name,
		CurrentStatus: string(box.CurrentStatus),
	}
	if session != nil {
		s := ToSessionResponse(session)
		resp.Session = &s
	}
	return resp
}

// MovementResponse defines data returned for a ledger entry.
type MovementResponse struct {
	MovementID   string          `json:"movementID"`
	SessionID    string          `json:"sessionID"`
	UserID       string          `json:"userID"`
	MovementType string          `json:"movementType"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToMovementResponse converts domain.CashMovement to DTO.
func ToMovementResponse(m *domain.CashMovement) MovementResponse {
	return MovementResponse{
		MovementID:   m.MovementID,
		SessionID:    m.SessionID,
		UserID:       m.UserID,
		MovementType: string(m.MovementType),
		Amount:       m.Amount,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
	}
}

// ListMovementsResponse wraps the session ledger.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
}

// ToListMovementsResponse converts a slice of domain.CashMovement to DTO.
func ToListMovementsResponse(ms []domain.CashMovement) ListMovementsResponse {
	out := make([]MovementResponse, len(ms))
	for i, m := range ms {
		out[i] = ToMovementResponse(&m)
	}
	return ListMovementsResponse{Movements: out}
}

// AuditResponse defines data returned for a cash count record.
type AuditResponse struct {
	AuditID       string          `json:"auditID"`
	SessionID     string          `json:"sessionID"`
	UserID        string          `json:"userID"`
	CountedAmount decimal.Decimal `json:"countedAmount"`
	SystemAmount  decimal.Decimal `json:"systemAmount"`
	Difference    decimal.Decimal `json:"difference"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToAuditResponse converts domain.CashboxAudit to DTO.
func ToAuditResponse(a *domain.CashboxAudit) AuditResponse {
	return AuditResponse{
		AuditID:       a.AuditID,
		SessionID:     a.SessionID,
		UserID:        a.UserID,
		CountedAmount: a.CountedAmount,
		SystemAmount:  a.SystemAmount,
		Difference:    a.Difference,
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
	}
}
