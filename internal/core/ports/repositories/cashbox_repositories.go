package repositories

import (
	"context"
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashboxReader defines read operations for cashbox data
type CashboxReader interface {
	// FindCashboxByID retrieves a specific cashbox by its unique identifier.
	FindCashboxByID(ctx context.Context, cashboxID string) (*domain.Cashbox, error)

	// FindDefaultCashbox retrieves the restaurant's default till, creating it if absent.
	FindDefaultCashbox(ctx context.Context, restaurantID string, createdBy string) (*domain.Cashbox, error)
}

// SessionReader defines read operations for cashbox session data
type SessionReader interface {
	// FindSessionByID retrieves a specific session by its unique identifier.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.CashboxSession, error)

	// FindOpenSessionByCashbox retrieves the cashbox's currently open session, if any.
	FindOpenSessionByCashbox(ctx context.Context, cashboxID string) (*domain.CashboxSession, error)

	// FindOpenSessionByUser retrieves the session the user currently has open, if any.
	FindOpenSessionByUser(ctx context.Context, userID string) (*domain.CashboxSession, error)

	// ListSessionsByCashbox retrieves a paginated history of sessions, most recent first.
	ListSessionsByCashbox(ctx context.Context, cashboxID string, limit int, offset int) ([]domain.CashboxSession, error)
}

// SessionWriter defines write operations for cashbox session data
type SessionWriter interface {
	// OpenSession persists the session, its OPENING movement, and the cashbox
	// status flip inside a single transaction. The partial unique index on open
	// sessions rejects a second OPEN session for the same cashbox.
	OpenSession(ctx context.Context, session domain.CashboxSession, opening domain.CashMovement) error

	// CloseSession locks the session row, replays its ledger to compute the
	// system amount, and closes session and cashbox in one transaction.
	// It returns the closed session with SystemAmount and ClosingAmount set.
	CloseSession(ctx context.Context, sessionID string, closingAmount decimal.Decimal, closingNotes string, closedBy string, closedAt time.Time) (*domain.CashboxSession, error)
}

// MovementManager defines operations for the append-only cash ledger
type MovementManager interface {
	// SaveMovement appends a ledger entry to an open session.
	SaveMovement(ctx context.Context, movement domain.CashMovement) error

	// ListMovementsBySession retrieves every ledger entry of a session in insertion order.
	ListMovementsBySession(ctx context.Context, sessionID string) ([]domain.CashMovement, error)
}

// AuditManager defines operations for point-in-time cash count records
type AuditManager interface {
	// SaveAudit persists a partial count record. Audits never mutate the session.
	SaveAudit(ctx context.Context, audit domain.CashboxAudit) error

	// ListAuditsBySession retrieves the audits taken during a session, most recent first.
	ListAuditsBySession(ctx context.Context, sessionID string) ([]domain.CashboxAudit, error)
}

// CashboxRepositoryFacade combines all cashbox-related repository interfaces
// This is a facade for clients that need access to all operations
type CashboxRepositoryFacade interface {
	CashboxReader
	SessionReader
	SessionWriter
	MovementManager
	AuditManager
}

// CashboxRepositoryWithTx extends CashboxRepositoryFacade with transaction capabilities
type CashboxRepositoryWithTx interface {
	CashboxRepositoryFacade
	TransactionManager
}
