package cashledger_test

import (
	"testing"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/sazonapp/pos_backend/internal/utils/cashledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func mov(t domain.MovementType, amount int64) domain.CashMovement {
	return domain.CashMovement{MovementType: t, Amount: decimal.NewFromInt(amount)}
}

func TestSystemAmount_Empty(t *testing.T) {
	assert.True(t, cashledger.SystemAmount(nil).IsZero())
	assert.True(t, cashledger.SystemAmount([]domain.CashMovement{}).IsZero())
}

func TestSystemAmount_CreditsAndDebits(t *testing.T) {
	movements := []domain.CashMovement{
		mov(domain.MovementOpening, 100000),
		mov(domain.MovementSale, 50000),
		mov(domain.MovementWithdrawal, 20000),
	}

	got := cashledger.SystemAmount(movements)
	assert.True(t, got.Equal(decimal.NewFromInt(130000)), "expected 130000, got %s", got)
}

func TestSystemAmount_RefundIsADebit(t *testing.T) {
	movements := []domain.CashMovement{
		mov(domain.MovementOpening, 80000),
		mov(domain.MovementSale, 30000),
		mov(domain.MovementRefund, 15000),
		mov(domain.MovementDeposit, 5000),
	}

	got := cashledger.SystemAmount(movements)
	assert.True(t, got.Equal(decimal.NewFromInt(100000)), "expected 100000, got %s", got)
}

func TestSystemAmount_OrderIndependent(t *testing.T) {
	a := []domain.CashMovement{
		mov(domain.MovementOpening, 100000),
		mov(domain.MovementSale, 25000),
		mov(domain.MovementSale, 42000),
		mov(domain.MovementWithdrawal, 30000),
		mov(domain.MovementRefund, 7000),
		mov(domain.MovementDeposit, 10000),
	}
	// Same multiset, reversed and shuffled.
	b := []domain.CashMovement{a[3], a[5], a[0], a[4], a[2], a[1]}

	assert.True(t, cashledger.SystemAmount(a).Equal(cashledger.SystemAmount(b)))
}

func TestSystemAmount_CanGoNegative(t *testing.T) {
	movements := []domain.CashMovement{
		mov(domain.MovementOpening, 1000),
		mov(domain.MovementWithdrawal, 5000),
	}

	got := cashledger.SystemAmount(movements)
	assert.True(t, got.Equal(decimal.NewFromInt(-4000)))
}

func TestDifference(t *testing.T) {
	diff := cashledger.Difference(decimal.NewFromInt(125000), decimal.NewFromInt(130000))
	assert.True(t, diff.Equal(decimal.NewFromInt(-5000)), "short till must yield a negative difference")

	diff = cashledger.Difference(decimal.NewFromInt(131000), decimal.NewFromInt(130000))
	assert.True(t, diff.Equal(decimal.NewFromInt(1000)))
}

func TestIsCredit(t *testing.T) {
	assert.True(t, cashledger.IsCredit(domain.MovementOpening))
	assert.True(t, cashledger.IsCredit(domain.MovementSale))
	assert.True(t, cashledger.IsCredit(domain.MovementDeposit))
	assert.False(t, cashledger.IsCredit(domain.MovementWithdrawal))
	assert.False(t, cashledger.IsCredit(domain.MovementRefund))
}
