package services

import (
	"context"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/sazonapp/pos_backend/internal/dto"
)

// CashboxSvcFacade defines operations for the till and its sessions.
type CashboxSvcFacade interface {
	// OpenCashbox opens a session on the restaurant's default till against the
	// user's open shift, recording the OPENING movement.
	OpenCashbox(ctx context.Context, user *domain.User, req dto.OpenCashboxRequest) (*domain.CashboxSession, error)

	// CloseCashbox closes the session: the ledger is replayed inside one
	// repository transaction, the shift is closed in cascade, and the closed
	// session is returned with SystemAmount set.
	CloseCashbox(ctx context.Context, user *domain.User, sessionID string, req dto.CloseCashboxRequest) (*domain.CashboxSession, error)

	// GetCashboxStatus describes the default till and its open session, if any.
	GetCashboxStatus(ctx context.Context, restaurantID string, requestedBy string) (*domain.Cashbox, *domain.CashboxSession, error)

	// RegisterMovement appends a manual DEPOSIT or WITHDRAWAL to an open session.
	RegisterMovement(ctx context.Context, user *domain.User, sessionID string, req dto.MovementRequest) (*domain.CashMovement, error)

	// GetOpenSessionForUser retrieves the session the user currently has open.
	// Cash payments require one; callers reject the payment when this returns
	// ErrNotFound.
	GetOpenSessionForUser(ctx context.Context, userID string) (*domain.CashboxSession, error)

	// AuditCashbox records a partial count against the live ledger without
	// mutating the session.
	AuditCashbox(ctx context.Context, user *domain.User, sessionID string, req dto.AuditRequest) (*domain.CashboxAudit, error)

	// ListMovements retrieves the session ledger in insertion order.
	ListMovements(ctx context.Context, sessionID string, requestedBy string) ([]domain.CashMovement, error)

	// ListSessions retrieves the till's session history, most recent first.
	ListSessions(ctx context.Context, restaurantID string, limit, offset int) ([]domain.CashboxSession, error)

	// ListAudits retrieves the counts taken during a session, most recent first.
	ListAudits(ctx context.Context, sessionID string) ([]domain.CashboxAudit, error)
}
