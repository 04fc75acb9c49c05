package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
	"github.com/sazonapp/pos_backend/internal/models"
	"github.com/sazonapp/pos_backend/internal/utils/mapping"
)

type PgxRestaurantRepository struct {
	db *pgxpool.Pool
}

func newPgxRestaurantRepository(db *pgxpool.Pool) portsrepo.RestaurantRepositoryFacade {
	return &PgxRestaurantRepository{db: db}
}

// Ensure PgxRestaurantRepository implements portsrepo.RestaurantRepositoryFacade
var _ portsrepo.RestaurantRepositoryFacade = (*PgxRestaurantRepository)(nil)

func scanRestaurant(row pgx.Row) (models.Restaurant, error) {
	var m models.Restaurant
	err := row.Scan(
		&m.RestaurantID,
		&m.Name,
		&m.Slug,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxRestaurantRepository) SaveRestaurant(ctx context.Context, restaurant domain.Restaurant) error {
	m := mapping.ToModelRestaurant(restaurant)
	query := `
		INSERT INTO restaurants (restaurant_id, name, slug, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		m.RestaurantID,
		m.Name,
		m.Slug,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save restaurant: %w", err)
	}
	return nil
}

func (r *PgxRestaurantRepository) UpdateRestaurant(ctx context.Context, restaurant domain.Restaurant) error {
	m := mapping.ToModelRestaurant(restaurant)
	query := `
		UPDATE restaurants
		SET name = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE restaurant_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.RestaurantID,
		m.Name,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update restaurant %s: %w", restaurant.RestaurantID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxRestaurantRepository) FindRestaurantByID(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	query := `
		SELECT restaurant_id, name, slug, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM restaurants
		WHERE restaurant_id = $1;
	`
	m, err := scanRestaurant(r.db.QueryRow(ctx, query, restaurantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find restaurant by ID %s: %w", restaurantID, err)
	}
	d := mapping.ToDomainRestaurant(m)
	return &d, nil
}

func (r *PgxRestaurantRepository) FindRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	query := `
		SELECT restaurant_id, name, slug, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM restaurants
		WHERE slug = $1;
	`
	m, err := scanRestaurant(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find restaurant by slug: %w", err)
	}
	d := mapping.ToDomainRestaurant(m)
	return &d, nil
}

// --- Shift definitions ---

func scanShiftDefinition(row pgx.Row) (models.ShiftDefinition, error) {
	var m models.ShiftDefinition
	err := row.Scan(
		&m.DefinitionID,
		&m.RestaurantID,
		&m.Name,
		&m.StartTime,
		&m.EndTime,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxRestaurantRepository) FindShiftDefinitionByID(ctx context.Context, definitionID string) (*domain.ShiftDefinition, error) {
	query := `
		SELECT definition_id, restaurant_id, name, start_time, end_time, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM shift_definitions
		WHERE definition_id = $1;
	`
	m, err := scanShiftDefinition(r.db.QueryRow(ctx, query, definitionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shift definition %s: %w", definitionID, err)
	}
	d := mapping.ToDomainShiftDefinition(m)
	return &d, nil
}

func (r *PgxRestaurantRepository) ListShiftDefinitions(ctx context.Context, restaurantID string) ([]domain.ShiftDefinition, error) {
	query := `
		SELECT definition_id, restaurant_id, name, start_time, end_time, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM shift_definitions
		WHERE restaurant_id = $1
		ORDER BY start_time;
	`
	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift definitions: %w", err)
	}
	defer rows.Close()

	ms := []models.ShiftDefinition{}
	for rows.Next() {
		m, err := scanShiftDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift definition row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating shift definition rows: %w", rows.Err())
	}
	return mapping.ToDomainShiftDefinitionSlice(ms), nil
}

func (r *PgxRestaurantRepository) SaveShiftDefinition(ctx context.Context, definition domain.ShiftDefinition) error {
	m := mapping.ToModelShiftDefinition(definition)
	query := `
		INSERT INTO shift_definitions (definition_id, restaurant_id, name, start_time, end_time, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		m.DefinitionID,
		m.RestaurantID,
		m.Name,
		m.StartTime,
		m.EndTime,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save shift definition: %w", err)
	}
	return nil
}

func (r *PgxRestaurantRepository) UpdateShiftDefinition(ctx context.Context, definition domain.ShiftDefinition) error {
	m := mapping.ToModelShiftDefinition(definition)
	query := `
		UPDATE shift_definitions
		SET name = $2, start_time = $3, end_time = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE definition_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.DefinitionID,
		m.Name,
		m.StartTime,
		m.EndTime,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift definition %s: %w", definition.DefinitionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Tables ---

func scanTable(row pgx.Row) (models.Table, error) {
	var m models.Table
	err := row.Scan(
		&m.TableID,
		&m.RestaurantID,
		&m.Name,
		&m.QRToken,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxRestaurantRepository) FindTableByID(ctx context.Context, tableID string) (*domain.Table, error) {
	query := `
		SELECT table_id, restaurant_id, name, qr_token, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM tables
		WHERE table_id = $1;
	`
	m, err := scanTable(r.db.QueryRow(ctx, query, tableID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find table %s: %w", tableID, err)
	}
	d := mapping.ToDomainTable(m)
	return &d, nil
}

func (r *PgxRestaurantRepository) FindTableByQRToken(ctx context.Context, qrToken string) (*domain.Table, error) {
	query := `
		SELECT table_id, restaurant_id, name, qr_token, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM tables
		WHERE qr_token = $1;
	`
	m, err := scanTable(r.db.QueryRow(ctx, query, qrToken))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find table by QR token: %w", err)
	}
	d := mapping.ToDomainTable(m)
	return &d, nil
}

func (r *PgxRestaurantRepository) ListTables(ctx context.Context, restaurantID string) ([]domain.Table, error) {
	query := `
		SELECT table_id, restaurant_id, name, qr_token, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM tables
		WHERE restaurant_id = $1
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	ms := []models.Table{}
	for rows.Next() {
		m, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan table row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating table rows: %w", rows.Err())
	}
	return mapping.ToDomainTableSlice(ms), nil
}

func (r *PgxRestaurantRepository) SaveTable(ctx context.Context, table domain.Table) error {
	m := mapping.ToModelTable(table)
	query := `
		INSERT INTO tables (table_id, restaurant_id, name, qr_token, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.TableID,
		m.RestaurantID,
		m.Name,
		m.QRToken,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save table: %w", err)
	}
	return nil
}

func (r *PgxRestaurantRepository) UpdateTable(ctx context.Context, table domain.Table) error {
	m := mapping.ToModelTable(table)
	query := `
		UPDATE tables
		SET name = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE table_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.TableID,
		m.Name,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update table %s: %w", table.TableID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
