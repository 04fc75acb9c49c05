package cashledger

import (
	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IsCredit reports whether the movement type adds money to the till.
// OPENING, SALE and DEPOSIT are credits; WITHDRAWAL and REFUND are debits.
func IsCredit(movementType domain.MovementType) bool {
	switch movementType {
	case domain.MovementOpening, domain.MovementSale, domain.MovementDeposit:
		return true
	}
	return false
}

// SystemAmount computes the theoretical cash balance of a session from its
// movement ledger:
//
//	balance = Σ(amount for OPENING, SALE, DEPOSIT) − Σ(amount for WITHDRAWAL, REFUND)
//
// The same function is used when closing a session and when auditing one, so
// the two can never disagree. The result is independent of movement order.
func SystemAmount(movements []domain.CashMovement) decimal.Decimal {
	balance := decimal.Zero
	for _, mov := range movements {
		if IsCredit(mov.MovementType) {
			balance = balance.Add(mov.Amount)
		} else {
			balance = balance.Sub(mov.Amount)
		}
	}
	return balance
}

// Difference is the over/short at close or audit time: counted − system.
// Negative means the till is short.
func Difference(countedAmount, systemAmount decimal.Decimal) decimal.Decimal {
	return countedAmount.Sub(systemAmount)
}
