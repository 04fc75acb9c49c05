package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cashbox is the database representation of a till.
type Cashbox struct {
	CashboxID     string `db:"cashbox_id"`
	RestaurantID  string `db:"restaurant_id"`
	Name          string `db:"name"`
	CurrentStatus string `db:"current_status"`
	AuditFields
}

// CashboxSession is one open/close cycle of a cashbox.
type CashboxSession struct {
	SessionID     string           `db:"session_id"`
	CashboxID     string           `db:"cashbox_id"`
	ShiftID       string           `db:"shift_id"`
	UserID        string           `db:"user_id"`
	OpeningAmount decimal.Decimal  `db:"opening_amount"`
	ClosingAmount *decimal.Decimal `db:"closing_amount"`
	SystemAmount  *decimal.Decimal `db:"system_amount"`
	Status        string           `db:"status"`
	OpenedAt      time.Time        `db:"opened_at"`
	ClosedAt      *time.Time       `db:"closed_at"`
	OpeningNotes  string           `db:"opening_notes"`
	ClosingNotes  string           `db:"closing_notes"`
	AuditFields
}

// CashMovement is one append-only ledger row.
type CashMovement struct {
	MovementID   string          `db:"movement_id"`
	SessionID    string          `db:"cashbox_session_id"`
	UserID       string          `db:"user_id"`
	MovementType string          `db:"movement_type"`
	Amount       decimal.Decimal `db:"amount"`
	Description  string          `db:"description"`
	CreatedAt    time.Time       `db:"created_at"`
}

// CashboxAudit is one partial count row.
type CashboxAudit struct {
	AuditID       string          `db:"audit_id"`
	SessionID     string          `db:"cashbox_session_id"`
	UserID        string          `db:"user_id"`
	CountedAmount decimal.Decimal `db:"counted_amount"`
	SystemAmount  decimal.Decimal `db:"system_amount"`
	Difference    decimal.Decimal `db:"difference"`
	Notes         string          `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
}
