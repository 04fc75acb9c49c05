package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashboxStatus is the denormalized open/closed state of a till.
type CashboxStatus string

const (
	CashboxOpen   CashboxStatus = "OPEN"
	CashboxClosed CashboxStatus = "CLOSED"
)

// SessionStatus is the state of one open-to-close cycle.
type SessionStatus string

const (
	SessionOpen   SessionStatus = "OPEN"
	SessionClosed SessionStatus = "CLOSED"
)

// MovementType partitions ledger entries into credits and debits against the till.
type MovementType string

const (
	MovementOpening    MovementType = "OPENING"
	MovementSale       MovementType = "SALE"
	MovementDeposit    MovementType = "DEPOSIT"
	MovementWithdrawal MovementType = "WITHDRAWAL"
	MovementRefund     MovementType = "REFUND" // Money leaving the till back to the customer
)

// IsValid reports whether the movement type is a known variant.
func (m MovementType) IsValid() bool {
	switch m {
	case MovementOpening, MovementSale, MovementDeposit, MovementWithdrawal, MovementRefund:
		return true
	}
	return false
}

// DefaultCashboxName is the single hardcoded till each tenant currently has.
const DefaultCashboxName = "Caja Principal"

// Cashbox is a named physical till.
// Invariant (partial unique index): at most one OPEN session per cashbox.
type Cashbox struct {
	CashboxID     string        `json:"cashboxID"` // Primary Key (UUID)
	RestaurantID  string        `json:"restaurantID"`
	Name          string        `json:"name"`
	CurrentStatus CashboxStatus `json:"currentStatus"`
	AuditFields
}

// CashboxSession is one open/close cycle of a cashbox tied to a shift and user.
// ClosingAmount and SystemAmount are set only when the session closes.
type CashboxSession struct {
	SessionID     string           `json:"sessionID"` // Primary Key (UUID)
	CashboxID     string           `json:"cashboxID"`
	ShiftID       string           `json:"shiftID"`
	UserID        string           `json:"userID"`
	OpeningAmount decimal.Decimal  `json:"openingAmount"`
	ClosingAmount *decimal.Decimal `json:"closingAmount,omitempty"`
	SystemAmount  *decimal.Decimal `json:"systemAmount,omitempty"` // Theoretical balance at close
	Status        SessionStatus    `json:"status"`
	OpenedAt      time.Time        `json:"openedAt"`
	ClosedAt      *time.Time       `json:"closedAt,omitempty"`
	OpeningNotes  string           `json:"openingNotes"`
	ClosingNotes  string           `json:"closingNotes"`
	AuditFields
}

// CashMovement is an append-only ledger entry against a session. Immutable once created.
type CashMovement struct {
	MovementID   string          `json:"movementID"` // Primary Key (UUID)
	SessionID    string          `json:"sessionID"`
	UserID       string          `json:"userID"`
	MovementType MovementType    `json:"movementType"`
	Amount       decimal.Decimal `json:"amount"` // Always positive; the type carries the sign
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// CashboxAudit is a point-in-time partial count record. It never mutates the session.
type CashboxAudit struct {
	AuditID       string          `json:"auditID"` // Primary Key (UUID)
	SessionID     string          `json:"sessionID"`
	UserID        string          `json:"userID"`
	CountedAmount decimal.Decimal `json:"countedAmount"`
	SystemAmount  decimal.Decimal `json:"systemAmount"` // Recomputed from the live ledger at audit time
	Difference    decimal.Decimal `json:"difference"`   // counted - system
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
}
