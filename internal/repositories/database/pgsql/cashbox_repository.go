package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
	"github.com/sazonapp/pos_backend/internal/models"
	"github.com/sazonapp/pos_backend/internal/utils/cashledger"
	"github.com/sazonapp/pos_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxCashboxRepository struct {
	BaseRepository
}

func newPgxCashboxRepository(db *pgxpool.Pool) portsrepo.CashboxRepositoryWithTx {
	return &PgxCashboxRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxCashboxRepository implements portsrepo.CashboxRepositoryWithTx
var _ portsrepo.CashboxRepositoryWithTx = (*PgxCashboxRepository)(nil)

const sessionColumns = `session_id, cashbox_id, shift_id, user_id, opening_amount,
	closing_amount, system_amount, status, opened_at, closed_at, opening_notes, closing_notes,
	created_at, created_by, last_updated_at, last_updated_by`

func scanSession(row pgx.Row) (models.CashboxSession, error) {
	var m models.CashboxSession
	err := row.Scan(
		&m.SessionID,
		&m.CashboxID,
		&m.ShiftID,
		&m.UserID,
		&m.OpeningAmount,
		&m.ClosingAmount,
		&m.SystemAmount,
		&m.Status,
		&m.OpenedAt,
		&m.ClosedAt,
		&m.OpeningNotes,
		&m.ClosingNotes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanMovement(row pgx.Row) (models.CashMovement, error) {
	var m models.CashMovement
	err := row.Scan(
		&m.MovementID,
		&m.SessionID,
		&m.UserID,
		&m.MovementType,
		&m.Amount,
		&m.Description,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxCashboxRepository) FindCashboxByID(ctx context.Context, cashboxID string) (*domain.Cashbox, error) {
	query := `
		SELECT cashbox_id, restaurant_id, name, current_status,
			created_at, created_by, last_updated_at, last_updated_by
		FROM cashboxes
		WHERE cashbox_id = $1;
	`
	var m models.Cashbox
	err := r.Pool.QueryRow(ctx, query, cashboxID).Scan(
		&m.CashboxID,
		&m.RestaurantID,
		&m.Name,
		&m.CurrentStatus,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cashbox %s: %w", cashboxID, err)
	}
	d := mapping.ToDomainCashbox(m)
	return &d, nil
}

// FindDefaultCashbox retrieves the restaurant's single till, creating it on
// first use. The unique index on restaurant_id keeps concurrent creates down
// to one row.
func (r *PgxCashboxRepository) FindDefaultCashbox(ctx context.Context, restaurantID string, createdBy string) (*domain.Cashbox, error) {
	query := `
		SELECT cashbox_id, restaurant_id, name, current_status,
			created_at, created_by, last_updated_at, last_updated_by
		FROM cashboxes
		WHERE restaurant_id = $1;
	`
	var m models.Cashbox
	err := r.Pool.QueryRow(ctx, query, restaurantID).Scan(
		&m.CashboxID,
		&m.RestaurantID,
		&m.Name,
		&m.CurrentStatus,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err == nil {
		d := mapping.ToDomainCashbox(m)
		return &d, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to find default cashbox: %w", err)
	}

	now := time.Now()
	insert := `
		INSERT INTO cashboxes (cashbox_id, restaurant_id, name, current_status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $5, $6)
		ON CONFLICT (restaurant_id) DO NOTHING;
	`
	if _, err := r.Pool.Exec(ctx, insert,
		uuid.NewString(), restaurantID, domain.DefaultCashboxName, string(domain.CashboxClosed), now, createdBy,
	); err != nil {
		return nil, fmt.Errorf("failed to create default cashbox: %w", err)
	}
	// Re-read so a lost race still returns the winning row.
	return r.FindDefaultCashbox(ctx, restaurantID, createdBy)
}

// OpenSession persists the session, its OPENING movement, and the cashbox
// status flip in one transaction. The partial unique index on open sessions
// per cashbox rejects a concurrent second open.
func (r *PgxCashboxRepository) OpenSession(ctx context.Context, session domain.CashboxSession, opening domain.CashMovement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelCashboxSession(session)
	sessionInsert := `
		INSERT INTO cashbox_sessions (session_id, cashbox_id, shift_id, user_id,
			opening_amount, status, opened_at, opening_notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	if _, err := tx.Exec(ctx, sessionInsert,
		m.SessionID,
		m.CashboxID,
		m.ShiftID,
		m.UserID,
		m.OpeningAmount,
		m.Status,
		m.OpenedAt,
		m.OpeningNotes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert cashbox session: %w", err)
	}

	mv := mapping.ToModelCashMovement(opening)
	movementInsert := `
		INSERT INTO cash_movements (movement_id, cashbox_session_id, user_id,
			movement_type, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	if _, err := tx.Exec(ctx, movementInsert,
		mv.MovementID,
		mv.SessionID,
		mv.UserID,
		mv.MovementType,
		mv.Amount,
		mv.Description,
		mv.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert opening movement: %w", err)
	}

	flip := `
		UPDATE cashboxes
		SET current_status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE cashbox_id = $1;
	`
	if _, err := tx.Exec(ctx, flip, m.CashboxID, string(domain.CashboxOpen), m.LastUpdatedAt, m.LastUpdatedBy); err != nil {
		return fmt.Errorf("failed to flip cashbox open: %w", err)
	}

	return r.Commit(ctx, tx)
}

// CloseSession locks the session row, replays its ledger to compute the system
// amount, and closes session and cashbox together. A movement committed after
// the lock is taken cannot slip between the replay and the update.
func (r *PgxCashboxRepository) CloseSession(ctx context.Context, sessionID string, closingAmount decimal.Decimal, closingNotes string, closedBy string, closedAt time.Time) (*domain.CashboxSession, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := fmt.Sprintf(`SELECT %s FROM cashbox_sessions WHERE session_id = $1 FOR UPDATE;`, sessionColumns)
	m, err := scanSession(tx.QueryRow(ctx, lockQuery, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock session %s: %w", sessionID, err)
	}
	if m.Status != string(domain.SessionOpen) {
		return nil, apperrors.ErrConflict
	}

	movements, err := r.listMovements(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}
	systemAmount := cashledger.SystemAmount(movements)

	update := `
		UPDATE cashbox_sessions
		SET status = $2, closing_amount = $3, system_amount = $4, closing_notes = $5,
			closed_at = $6, last_updated_at = $6, last_updated_by = $7
		WHERE session_id = $1;
	`
	if _, err := tx.Exec(ctx, update,
		sessionID,
		string(domain.SessionClosed),
		closingAmount,
		systemAmount,
		closingNotes,
		closedAt,
		closedBy,
	); err != nil {
		return nil, fmt.Errorf("failed to close session %s: %w", sessionID, err)
	}

	flip := `
		UPDATE cashboxes
		SET current_status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE cashbox_id = $1;
	`
	if _, err := tx.Exec(ctx, flip, m.CashboxID, string(domain.CashboxClosed), closedAt, closedBy); err != nil {
		return nil, fmt.Errorf("failed to flip cashbox closed: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	m.Status = string(domain.SessionClosed)
	m.ClosingAmount = &closingAmount
	m.SystemAmount = &systemAmount
	m.ClosingNotes = closingNotes
	m.ClosedAt = &closedAt
	m.LastUpdatedAt = closedAt
	m.LastUpdatedBy = closedBy
	d := mapping.ToDomainCashboxSession(m)
	return &d, nil
}

func (r *PgxCashboxRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.CashboxSession, error) {
	query := fmt.Sprintf(`SELECT %s FROM cashbox_sessions WHERE session_id = $1;`, sessionColumns)
	m, err := scanSession(r.Pool.QueryRow(ctx, query, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session %s: %w", sessionID, err)
	}
	d := mapping.ToDomainCashboxSession(m)
	return &d, nil
}

func (r *PgxCashboxRepository) FindOpenSessionByCashbox(ctx context.Context, cashboxID string) (*domain.CashboxSession, error) {
	query := fmt.Sprintf(`SELECT %s FROM cashbox_sessions WHERE cashbox_id = $1 AND status = $2;`, sessionColumns)
	m, err := scanSession(r.Pool.QueryRow(ctx, query, cashboxID, string(domain.SessionOpen)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open session for cashbox %s: %w", cashboxID, err)
	}
	d := mapping.ToDomainCashboxSession(m)
	return &d, nil
}

func (r *PgxCashboxRepository) FindOpenSessionByUser(ctx context.Context, userID string) (*domain.CashboxSession, error) {
	query := fmt.Sprintf(`SELECT %s FROM cashbox_sessions WHERE user_id = $1 AND status = $2;`, sessionColumns)
	m, err := scanSession(r.Pool.QueryRow(ctx, query, userID, string(domain.SessionOpen)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open session for user %s: %w", userID, err)
	}
	d := mapping.ToDomainCashboxSession(m)
	return &d, nil
}

func (r *PgxCashboxRepository) ListSessionsByCashbox(ctx context.Context, cashboxID string, limit int, offset int) ([]domain.CashboxSession, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := fmt.Sprintf(`
		SELECT %s FROM cashbox_sessions
		WHERE cashbox_id = $1
		ORDER BY opened_at DESC
		LIMIT $2 OFFSET $3;
	`, sessionColumns)
	rows, err := r.Pool.Query(ctx, query, cashboxID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	ms := []models.CashboxSession{}
	for rows.Next() {
		m, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", rows.Err())
	}
	return mapping.ToDomainCashboxSessionSlice(ms), nil
}

// SaveMovement appends a ledger entry. The insert is conditional on the
// session still being open, so a close racing this call wins: ErrConflict.
func (r *PgxCashboxRepository) SaveMovement(ctx context.Context, movement domain.CashMovement) error {
	m := mapping.ToModelCashMovement(movement)
	query := `
		INSERT INTO cash_movements (movement_id, cashbox_session_id, user_id,
			movement_type, amount, description, created_at)
		SELECT $1, $2, $3, $4, $5, $6, $7
		WHERE EXISTS (
			SELECT 1 FROM cashbox_sessions
			WHERE session_id = $2 AND status = $8
		);
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.MovementID,
		m.SessionID,
		m.UserID,
		m.MovementType,
		m.Amount,
		m.Description,
		m.CreatedAt,
		string(domain.SessionOpen),
	)
	if err != nil {
		return fmt.Errorf("failed to save movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

type pgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PgxCashboxRepository) listMovements(ctx context.Context, q pgxQuerier, sessionID string) ([]domain.CashMovement, error) {
	query := `
		SELECT movement_id, cashbox_session_id, user_id, movement_type, amount, description, created_at
		FROM cash_movements
		WHERE cashbox_session_id = $1
		ORDER BY created_at, movement_id;
	`
	rows, err := q.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	ms := []models.CashMovement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating movement rows: %w", rows.Err())
	}
	return mapping.ToDomainCashMovementSlice(ms), nil
}

func (r *PgxCashboxRepository) ListMovementsBySession(ctx context.Context, sessionID string) ([]domain.CashMovement, error) {
	return r.listMovements(ctx, r.Pool, sessionID)
}

func (r *PgxCashboxRepository) SaveAudit(ctx context.Context, audit domain.CashboxAudit) error {
	m := mapping.ToModelCashboxAudit(audit)
	query := `
		INSERT INTO cashbox_audits (audit_id, cashbox_session_id, user_id,
			counted_amount, system_amount, difference, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AuditID,
		m.SessionID,
		m.UserID,
		m.CountedAmount,
		m.SystemAmount,
		m.Difference,
		m.Notes,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit: %w", err)
	}
	return nil
}

func (r *PgxCashboxRepository) ListAuditsBySession(ctx context.Context, sessionID string) ([]domain.CashboxAudit, error) {
	query := `
		SELECT audit_id, cashbox_session_id, user_id, counted_amount, system_amount, difference, notes, created_at
		FROM cashbox_audits
		WHERE cashbox_session_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query audits: %w", err)
	}
	defer rows.Close()

	ms := []models.CashboxAudit{}
	for rows.Next() {
		var m models.CashboxAudit
		if err := rows.Scan(
			&m.AuditID,
			&m.SessionID,
			&m.UserID,
			&m.CountedAmount,
			&m.SystemAmount,
			&m.Difference,
			&m.Notes,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating audit rows: %w", rows.Err())
	}
	return mapping.ToDomainCashboxAuditSlice(ms), nil
}
