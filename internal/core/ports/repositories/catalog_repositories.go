package repositories

import (
	"context"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// CategoryManager defines operations for menu categories
type CategoryManager interface {
	// FindCategoryByID retrieves a specific category.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves the restaurant's categories in sort order.
	// When activeOnly is true, disabled categories are omitted.
	ListCategories(ctx context.Context, restaurantID string, activeOnly bool) ([]domain.Category, error)

	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) error
}

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a specific product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves multiple products by their IDs.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves the restaurant's products in sort order.
	// When activeOnly is true, disabled products are omitted.
	ListProducts(ctx context.Context, restaurantID string, activeOnly bool) ([]domain.Product, error)

	// ListProductsByCategory retrieves a category's products in sort order.
	ListProductsByCategory(ctx context.Context, categoryID string, activeOnly bool) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product's details.
	UpdateProduct(ctx context.Context, product domain.Product) error
}

// CatalogRepositoryFacade combines all catalog-related repository interfaces
// This is a facade for clients that need access to all operations
type CatalogRepositoryFacade interface {
	CategoryManager
	ProductReader
	ProductWriter
}
