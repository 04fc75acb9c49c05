package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
	"github.com/sazonapp/pos_backend/internal/models"
	"github.com/sazonapp/pos_backend/internal/utils/mapping"
)

type PgxShiftRepository struct {
	db *pgxpool.Pool
}

func newPgxShiftRepository(db *pgxpool.Pool) portsrepo.ShiftRepositoryFacade {
	return &PgxShiftRepository{db: db}
}

// Ensure PgxShiftRepository implements portsrepo.ShiftRepositoryFacade
var _ portsrepo.ShiftRepositoryFacade = (*PgxShiftRepository)(nil)

const shiftColumns = `shift_id, user_id, restaurant_id, shift_type, shift_definition_id,
	status, started_at, ended_at, created_at, created_by, last_updated_at, last_updated_by`

func scanShift(row pgx.Row) (models.Shift, error) {
	var m models.Shift
	err := row.Scan(
		&m.ShiftID,
		&m.UserID,
		&m.RestaurantID,
		&m.ShiftType,
		&m.ShiftDefinitionID,
		&m.Status,
		&m.StartedAt,
		&m.EndedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveShift inserts the shift. The partial unique index on open shifts per
// user surfaces as ErrDuplicate when the user already has one.
func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	m := mapping.ToModelShift(shift)
	query := `
		INSERT INTO shifts (shift_id, user_id, restaurant_id, shift_type, shift_definition_id,
			status, started_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		m.ShiftID,
		m.UserID,
		m.RestaurantID,
		m.ShiftType,
		m.ShiftDefinitionID,
		m.Status,
		m.StartedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save shift: %w", err)
	}
	return nil
}

// CloseShift flips an open shift to CLOSED. Closing an already closed shift is
// a no-op so the cashbox cascade never fails on it.
func (r *PgxShiftRepository) CloseShift(ctx context.Context, shiftID string, endedAt time.Time, closedBy string) error {
	query := `
		UPDATE shifts
		SET status = $2, ended_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE shift_id = $1 AND status = $5;
	`
	_, err := r.db.Exec(ctx, query, shiftID, string(domain.ShiftClosed), endedAt, closedBy, string(domain.ShiftOpen))
	if err != nil {
		return fmt.Errorf("failed to close shift %s: %w", shiftID, err)
	}
	return nil
}

func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := fmt.Sprintf(`SELECT %s FROM shifts WHERE shift_id = $1;`, shiftColumns)
	m, err := scanShift(r.db.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shift %s: %w", shiftID, err)
	}
	d := mapping.ToDomainShift(m)
	return &d, nil
}

func (r *PgxShiftRepository) FindOpenShiftByUser(ctx context.Context, userID string) (*domain.Shift, error) {
	query := fmt.Sprintf(`SELECT %s FROM shifts WHERE user_id = $1 AND status = $2;`, shiftColumns)
	m, err := scanShift(r.db.QueryRow(ctx, query, userID, string(domain.ShiftOpen)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open shift for user %s: %w", userID, err)
	}
	d := mapping.ToDomainShift(m)
	return &d, nil
}

func (r *PgxShiftRepository) ListShiftsByRestaurant(ctx context.Context, restaurantID string, limit int, offset int) ([]domain.Shift, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := fmt.Sprintf(`
		SELECT %s FROM shifts
		WHERE restaurant_id = $1
		ORDER BY started_at DESC
		LIMIT $2 OFFSET $3;
	`, shiftColumns)
	rows, err := r.db.Query(ctx, query, restaurantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	ms := []models.Shift{}
	for rows.Next() {
		m, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating shift rows: %w", rows.Err())
	}
	return mapping.ToDomainShiftSlice(ms), nil
}
