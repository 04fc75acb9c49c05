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

type PgxReservationRepository struct {
	db *pgxpool.Pool
}

func newPgxReservationRepository(db *pgxpool.Pool) portsrepo.ReservationRepositoryFacade {
	return &PgxReservationRepository{db: db}
}

// Ensure PgxReservationRepository implements portsrepo.ReservationRepositoryFacade
var _ portsrepo.ReservationRepositoryFacade = (*PgxReservationRepository)(nil)

const reservationColumns = `reservation_id, restaurant_id, customer_name, customer_phone,
	party_size, reserved_for, status, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func scanReservation(row pgx.Row) (models.Reservation, error) {
	var m models.Reservation
	err := row.Scan(
		&m.ReservationID,
		&m.RestaurantID,
		&m.CustomerName,
		&m.CustomerPhone,
		&m.PartySize,
		&m.ReservedFor,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	m := mapping.ToModelReservation(reservation)
	query := `
		INSERT INTO reservations (reservation_id, restaurant_id, customer_name, customer_phone,
			party_size, reserved_for, status, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db.Exec(ctx, query,
		m.ReservationID,
		m.RestaurantID,
		m.CustomerName,
		m.CustomerPhone,
		m.PartySize,
		m.ReservedFor,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save reservation: %w", err)
	}
	return nil
}

func (r *PgxReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	query := fmt.Sprintf(`SELECT %s FROM reservations WHERE reservation_id = $1;`, reservationColumns)
	m, err := scanReservation(r.db.QueryRow(ctx, query, reservationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reservation %s: %w", reservationID, err)
	}
	d := mapping.ToDomainReservation(m)
	return &d, nil
}

func (r *PgxReservationRepository) ListReservationsByDay(ctx context.Context, restaurantID string, dayStart, dayEnd time.Time) ([]domain.Reservation, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM reservations
		WHERE restaurant_id = $1 AND reserved_for >= $2 AND reserved_for < $3
		ORDER BY reserved_for;
	`, reservationColumns)
	rows, err := r.db.Query(ctx, query, restaurantID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	ms := []models.Reservation{}
	for rows.Next() {
		m, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", rows.Err())
	}
	return mapping.ToDomainReservationSlice(ms), nil
}

// UpdateReservationStatus conditionally advances the reservation. Zero rows
// affected means the reservation moved out of the expected status first.
func (r *PgxReservationRepository) UpdateReservationStatus(ctx context.Context, reservationID string, from domain.ReservationStatus, to domain.ReservationStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE reservations
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE reservation_id = $1 AND status = $2;
	`
	tag, err := r.db.Exec(ctx, query, reservationID, string(from), string(to), updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update reservation %s status: %w", reservationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}
