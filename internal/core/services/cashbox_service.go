package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/dto"
	"github.com/sazonapp/pos_backend/internal/utils/cashledger"
)

const (
	errCashboxAlreadyOpenMsg = "La Caja Principal ya está abierta. Debe cerrarla antes de abrir una nueva sesión."
	errNoOpenShiftMsg        = "Debes tener un turno activo para abrir la caja."
	errSessionClosedMsg      = "La sesión de caja ya está cerrada."
)

// cashboxService implements the CashboxSvcFacade interface
type cashboxService struct {
	BaseService
	cashboxRepo portsrepo.CashboxRepositoryFacade
	shiftRepo   portsrepo.ShiftRepositoryFacade
	broadcaster portssvc.ChangeBroadcaster
}

// NewCashboxService creates a new cashbox service with the provided dependencies.
// broadcaster may be nil when realtime is disabled.
func NewCashboxService(
	cashboxRepo portsrepo.CashboxRepositoryFacade,
	shiftRepo portsrepo.ShiftRepositoryFacade,
	broadcaster portssvc.ChangeBroadcaster,
) portssvc.CashboxSvcFacade {
	return &cashboxService{
		cashboxRepo: cashboxRepo,
		shiftRepo:   shiftRepo,
		broadcaster: broadcaster,
	}
}

var _ portssvc.CashboxSvcFacade = (*cashboxService)(nil)

// OpenCashbox opens a session on the restaurant's default till.
func (s *cashboxService) OpenCashbox(ctx context.Context, user *domain.User, req dto.OpenCashboxRequest) (*domain.CashboxSession, error) {
	restaurantID, err := s.RequireRestaurant(user)
	if err != nil {
		return nil, err
	}
	if err := s.RequirePermission(ctx, user, domain.PermOpenCashbox); err != nil {
		return nil, err
	}
	if req.OpeningAmount.IsNegative() {
		return nil, fmt.Errorf("%w: el monto de apertura no puede ser negativo", apperrors.ErrValidation)
	}

	shift, err := s.shiftRepo.FindOpenShiftByUser(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, errNoOpenShiftMsg)
		}
		return nil, err
	}

	box, err := s.cashboxRepo.FindDefaultCashbox(ctx, restaurantID, user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve default cashbox", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	if box.CurrentStatus == domain.CashboxOpen {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, errCashboxAlreadyOpenMsg)
	}

	now := time.Now()
	session := domain.CashboxSession{
		SessionID:     uuid.NewString(),
		CashboxID:     box.CashboxID,
		ShiftID:       shift.ShiftID,
		UserID:        user.UserID,
		OpeningAmount: req.OpeningAmount,
		Status:        domain.SessionOpen,
		OpenedAt:      now,
		OpeningNotes:  req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     user.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: user.UserID,
		},
	}
	opening := domain.CashMovement{
		MovementID:   uuid.NewString(),
		SessionID:    session.SessionID,
		UserID:       user.UserID,
		MovementType: domain.MovementOpening,
		Amount:       req.OpeningAmount,
		Description:  "Apertura de caja",
		CreatedAt:    now,
	}

	if err := s.cashboxRepo.OpenSession(ctx, session, opening); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race against a concurrent open on the same till.
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, errCashboxAlreadyOpenMsg)
		}
		s.LogError(ctx, err, "Failed to open cashbox session", slog.String("cashbox_id", box.CashboxID))
		return nil, err
	}

	s.LogInfo(ctx, "Cashbox session opened",
		slog.String("session_id", session.SessionID),
		slog.String("cashbox_id", box.CashboxID),
		slog.String("opening_amount", req.OpeningAmount.String()))
	s.broadcast(domain.ChangeEvent{
		Table:        "cashbox_sessions",
		Op:           domain.ChangeInsert,
		RestaurantID: restaurantID,
		RecordID:     session.SessionID,
		Payload:      session,
		OccurredAt:   now,
	})
	return &session, nil
}

// CloseCashbox closes the session. The ledger replay and the status flips run
// inside one repository transaction so no movement recorded mid-close can slip
// between the read and the write. The worker's shift closes in cascade.
func (s *cashboxService) CloseCashbox(ctx context.Context, user *domain.User, sessionID string, req dto.CloseCashboxRequest) (*domain.CashboxSession, error) {
	restaurantID, err := s.RequireRestaurant(user)
	if err != nil {
		return nil, err
	}
	if req.ClosingAmount.IsNegative() {
		return nil, fmt.Errorf("%w: el monto de cierre no puede ser negativo", apperrors.ErrValidation)
	}

	session, err := s.cashboxRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == domain.SessionClosed {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, errSessionClosedMsg)
	}
	// Only the session owner or a supervisor may close.
	if session.UserID != user.UserID {
		if err := s.RequirePermission(ctx, user, domain.PermAuditCashbox); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	closed, err := s.cashboxRepo.CloseSession(ctx, sessionID, req.ClosingAmount, req.Notes, user.UserID, now)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, errSessionClosedMsg)
		}
		s.LogError(ctx, err, "Failed to close cashbox session", slog.String("session_id", sessionID))
		return nil, err
	}

	if err := s.shiftRepo.CloseShift(ctx, closed.ShiftID, now, user.UserID); err != nil {
		// The session is already closed; log and continue rather than leaving
		// the caller in doubt about the close itself.
		s.LogError(ctx, err, "Failed to close shift in cascade",
			slog.String("shift_id", closed.ShiftID),
			slog.String("session_id", sessionID))
	}

	difference := cashledger.Difference(req.ClosingAmount, *closed.SystemAmount)
	s.LogInfo(ctx, "Cashbox session closed",
		slog.String("session_id", sessionID),
		slog.String("closing_amount", req.ClosingAmount.String()),
		slog.String("system_amount", closed.SystemAmount.String()),
		slog.String("difference", difference.String()))
	s.broadcast(domain.ChangeEvent{
		Table:        "cashbox_sessions",
		Op:           domain.ChangeUpdate,
		RestaurantID: restaurantID,
		RecordID:     sessionID,
		Payload:      closed,
		OccurredAt:   now,
	})
	return closed, nil
}

// GetCashboxStatus describes the default till and its open session, if any.
func (s *cashboxService) GetCashboxStatus(ctx context.Context, restaurantID string, requestedBy string) (*domain.Cashbox, *domain.CashboxSession, error) {
	box, err := s.cashboxRepo.FindDefaultCashbox(ctx, restaurantID, requestedBy)
	if err != nil {
		return nil, nil, err
	}
	session, err := s.cashboxRepo.FindOpenSessionByCashbox(ctx, box.CashboxID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return box, nil, nil
		}
		return nil, nil, err
	}
	return box, session, nil
}

// GetOpenSessionForUser retrieves the session the user currently has open.
func (s *cashboxService) GetOpenSessionForUser(ctx context.Context, userID string) (*domain.CashboxSession, error) {
	return s.cashboxRepo.FindOpenSessionByUser(ctx, userID)
}

// RegisterMovement appends a manual DEPOSIT, WITHDRAWAL, or REFUND to an open
// session. OPENING and SALE entries are system generated and rejected here.
func (s *cashboxService) RegisterMovement(ctx context.Context, user *domain.User, sessionID string, req dto.MovementRequest) (*domain.CashMovement, error) {
	movementType := domain.MovementType(req.MovementType)
	switch movementType {
	case domain.MovementDeposit, domain.MovementWithdrawal, domain.MovementRefund:
	default:
		return nil, fmt.Errorf("%w: tipo de movimiento no permitido", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: el monto debe ser mayor a cero", apperrors.ErrValidation)
	}

	session, err := s.cashboxRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionOpen {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, errSessionClosedMsg)
	}

	movement := domain.CashMovement{
		MovementID:   uuid.NewString(),
		SessionID:    sessionID,
		UserID:       user.UserID,
		MovementType: movementType,
		Amount:       req.Amount,
		Description:  req.Description,
		CreatedAt:    time.Now(),
	}
	if err := s.cashboxRepo.SaveMovement(ctx, movement); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, errSessionClosedMsg)
		}
		s.LogError(ctx, err, "Failed to save movement", slog.String("session_id", sessionID))
		return nil, err
	}

	s.LogInfo(ctx, "Cash movement registered",
		slog.String("movement_id", movement.MovementID),
		slog.String("type", string(movementType)),
		slog.String("amount", req.Amount.String()))
	return &movement, nil
}

// AuditCashbox records a partial count against the live ledger. The system
// amount is recomputed from the movements at audit time; the session itself
// never changes.
func (s *cashboxService) AuditCashbox(ctx context.Context, user *domain.User, sessionID string, req dto.AuditRequest) (*domain.CashboxAudit, error) {
	if err := s.RequirePermission(ctx, user, domain.PermAuditCashbox); err != nil {
		return nil, err
	}
	if req.CountedAmount.IsNegative() {
		return nil, fmt.Errorf("%w: el monto contado no puede ser negativo", apperrors.ErrValidation)
	}

	session, err := s.cashboxRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionOpen {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, errSessionClosedMsg)
	}

	movements, err := s.cashboxRepo.ListMovementsBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	systemAmount := cashledger.SystemAmount(movements)

	audit := domain.CashboxAudit{
		AuditID:       uuid.NewString(),
		SessionID:     sessionID,
		UserID:        user.UserID,
		CountedAmount: req.CountedAmount,
		SystemAmount:  systemAmount,
		Difference:    cashledger.Difference(req.CountedAmount, systemAmount),
		Notes:         req.Notes,
		CreatedAt:     time.Now(),
	}
	if err := s.cashboxRepo.SaveAudit(ctx, audit); err != nil {
		s.LogError(ctx, err, "Failed to save audit", slog.String("session_id", sessionID))
		return nil, err
	}

	s.LogInfo(ctx, "Cashbox audited",
		slog.String("audit_id", audit.AuditID),
		slog.String("session_id", sessionID),
		slog.String("difference", audit.Difference.String()))
	return &audit, nil
}

// ListMovements retrieves the session ledger in insertion order.
func (s *cashboxService) ListMovements(ctx context.Context, sessionID string, requestedBy string) ([]domain.CashMovement, error) {
	movements, err := s.cashboxRepo.ListMovementsBySession(ctx, sessionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movements", slog.String("session_id", sessionID))
		return nil, err
	}
	if movements == nil {
		return []domain.CashMovement{}, nil
	}
	return movements, nil
}

// ListSessions retrieves the default till's session history.
func (s *cashboxService) ListSessions(ctx context.Context, restaurantID string, limit, offset int) ([]domain.CashboxSession, error) {
	if limit <= 0 {
		limit = 20
	}
	box, err := s.cashboxRepo.FindDefaultCashbox(ctx, restaurantID, "")
	if err != nil {
		return nil, err
	}
	sessions, err := s.cashboxRepo.ListSessionsByCashbox(ctx, box.CashboxID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sessions", slog.String("cashbox_id", box.CashboxID))
		return nil, err
	}
	if sessions == nil {
		return []domain.CashboxSession{}, nil
	}
	return sessions, nil
}

// ListAudits retrieves the counts taken during a session.
func (s *cashboxService) ListAudits(ctx context.Context, sessionID string) ([]domain.CashboxAudit, error) {
	audits, err := s.cashboxRepo.ListAuditsBySession(ctx, sessionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audits", slog.String("session_id", sessionID))
		return nil, err
	}
	if audits == nil {
		return []domain.CashboxAudit{}, nil
	}
	return audits, nil
}

func (s *cashboxService) broadcast(event domain.ChangeEvent) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastChange(event)
	}
}
