package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
	"github.com/sazonapp/pos_backend/internal/models"
	"github.com/sazonapp/pos_backend/internal/utils/mapping"
)

type PgxLoyaltyRepository struct {
	db *pgxpool.Pool
}

func newPgxLoyaltyRepository(db *pgxpool.Pool) portsrepo.LoyaltyRepository {
	return &PgxLoyaltyRepository{db: db}
}

// Ensure PgxLoyaltyRepository implements portsrepo.LoyaltyRepository
var _ portsrepo.LoyaltyRepository = (*PgxLoyaltyRepository)(nil)

const loyaltyColumns = `account_id, restaurant_id, customer_phone, customer_name, points,
	created_at, created_by, last_updated_at, last_updated_by`

func scanLoyaltyAccount(row pgx.Row) (models.LoyaltyAccount, error) {
	var m models.LoyaltyAccount
	err := row.Scan(
		&m.AccountID,
		&m.RestaurantID,
		&m.CustomerPhone,
		&m.CustomerName,
		&m.Points,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLoyaltyRepository) FindAccountByPhone(ctx context.Context, restaurantID string, customerPhone string) (*domain.LoyaltyAccount, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM loyalty_accounts
		WHERE restaurant_id = $1 AND customer_phone = $2;
	`, loyaltyColumns)
	m, err := scanLoyaltyAccount(r.db.QueryRow(ctx, query, restaurantID, customerPhone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loyalty account: %w", err)
	}
	d := mapping.ToDomainLoyaltyAccount(m)
	return &d, nil
}

// AccruePoints upserts the account keyed by (restaurant_id, customer_phone)
// and adds points, returning the new balance. The name is refreshed so the
// latest order wins.
func (r *PgxLoyaltyRepository) AccruePoints(ctx context.Context, restaurantID string, customerPhone string, customerName string, points int64, updatedBy string) (*domain.LoyaltyAccount, error) {
	query := fmt.Sprintf(`
		INSERT INTO loyalty_accounts (account_id, restaurant_id, customer_phone, customer_name, points,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, NOW(), $6, NOW(), $6)
		ON CONFLICT (restaurant_id, customer_phone) DO UPDATE SET
			points = loyalty_accounts.points + EXCLUDED.points,
			customer_name = CASE WHEN EXCLUDED.customer_name <> '' THEN EXCLUDED.customer_name ELSE loyalty_accounts.customer_name END,
			last_updated_at = NOW(),
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING %s;
	`, loyaltyColumns)
	m, err := scanLoyaltyAccount(r.db.QueryRow(ctx, query,
		uuid.NewString(), restaurantID, customerPhone, customerName, points, updatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to accrue loyalty points: %w", err)
	}
	d := mapping.ToDomainLoyaltyAccount(m)
	return &d, nil
}

func (r *PgxLoyaltyRepository) ListTopAccounts(ctx context.Context, restaurantID string, limit int) ([]domain.LoyaltyAccount, error) {
	if limit <= 0 {
		limit = 10
	}
	query := fmt.Sprintf(`
		SELECT %s FROM loyalty_accounts
		WHERE restaurant_id = $1
		ORDER BY points DESC, last_updated_at DESC
		LIMIT $2;
	`, loyaltyColumns)
	rows, err := r.db.Query(ctx, query, restaurantID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query loyalty accounts: %w", err)
	}
	defer rows.Close()

	ms := []models.LoyaltyAccount{}
	for rows.Next() {
		m, err := scanLoyaltyAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loyalty account row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating loyalty account rows: %w", rows.Err())
	}
	return mapping.ToDomainLoyaltyAccountSlice(ms), nil
}
