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

type PgxCatalogRepository struct {
	db *pgxpool.Pool
}

func newPgxCatalogRepository(db *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{db: db}
}

// Ensure PgxCatalogRepository implements portsrepo.CatalogRepositoryFacade
var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

const productColumns = `product_id, restaurant_id, category_id, name, description,
	price, image_url, sort_order, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID,
		&m.RestaurantID,
		&m.Name,
		&m.SortOrder,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.RestaurantID,
		&m.CategoryID,
		&m.Name,
		&m.Description,
		&m.Price,
		&m.ImageURL,
		&m.SortOrder,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxCatalogRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, restaurant_id, name, sort_order, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		WHERE category_id = $1;
	`
	m, err := scanCategory(r.db.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	d := mapping.ToDomainCategory(m)
	return &d, nil
}

func (r *PgxCatalogRepository) ListCategories(ctx context.Context, restaurantID string, activeOnly bool) ([]domain.Category, error) {
	query := `
		SELECT category_id, restaurant_id, name, sort_order, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		WHERE restaurant_id = $1 AND ($2 = false OR is_active)
		ORDER BY sort_order, name;
	`
	rows, err := r.db.Query(ctx, query, restaurantID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	ms := []models.Category{}
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return mapping.ToDomainCategorySlice(ms), nil
}

func (r *PgxCatalogRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO categories (category_id, restaurant_id, name, sort_order, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.CategoryID,
		m.RestaurantID,
		m.Name,
		m.SortOrder,
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
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCatalogRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		UPDATE categories
		SET name = $2, sort_order = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE category_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.SortOrder,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCatalogRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE product_id = $1;`, productColumns)
	m, err := scanProduct(r.db.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	d := mapping.ToDomainProduct(m)
	return &d, nil
}

// FindProductsByIDs retrieves the requested products keyed by ID. Missing IDs
// are simply absent from the map.
func (r *PgxCatalogRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM products WHERE product_id = ANY($1);`, productColumns)
	rows, err := r.db.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Product, len(productIDs))
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		result[m.ProductID] = mapping.ToDomainProduct(m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}
	return result, nil
}

func (r *PgxCatalogRepository) ListProducts(ctx context.Context, restaurantID string, activeOnly bool) ([]domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE restaurant_id = $1 AND ($2 = false OR is_active)
		ORDER BY sort_order, name;
	`, productColumns)
	return r.queryProducts(ctx, query, restaurantID, activeOnly)
}

func (r *PgxCatalogRepository) ListProductsByCategory(ctx context.Context, categoryID string, activeOnly bool) ([]domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE category_id = $1 AND ($2 = false OR is_active)
		ORDER BY sort_order, name;
	`, productColumns)
	return r.queryProducts(ctx, query, categoryID, activeOnly)
}

func (r *PgxCatalogRepository) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	ms := []models.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}
	return mapping.ToDomainProductSlice(ms), nil
}

func (r *PgxCatalogRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (product_id, restaurant_id, category_id, name, description,
			price, image_url, sort_order, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		m.ProductID,
		m.RestaurantID,
		m.CategoryID,
		m.Name,
		m.Description,
		m.Price,
		m.ImageURL,
		m.SortOrder,
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
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *PgxCatalogRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		UPDATE products
		SET category_id = $2, name = $3, description = $4, price = $5, image_url = $6,
			sort_order = $7, is_active = $8, last_updated_at = $9, last_updated_by = $10
		WHERE product_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.ProductID,
		m.CategoryID,
		m.Name,
		m.Description,
		m.Price,
		m.ImageURL,
		m.SortOrder,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
