package repositories

import (
	"context"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// RestaurantReader defines read operations for restaurant data
type RestaurantReader interface {
	// FindRestaurantByID retrieves a specific restaurant by its unique identifier.
	FindRestaurantByID(ctx context.Context, restaurantID string) (*domain.Restaurant, error)

	// FindRestaurantBySlug retrieves a restaurant by its public URL slug.
	FindRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error)
}

// RestaurantWriter defines write operations for restaurant data
type RestaurantWriter interface {
	// SaveRestaurant persists a new restaurant.
	SaveRestaurant(ctx context.Context, restaurant domain.Restaurant) error

	// UpdateRestaurant updates an existing restaurant's details.
	UpdateRestaurant(ctx context.Context, restaurant domain.Restaurant) error
}

// ShiftDefinitionManager defines operations for named work schedules
type ShiftDefinitionManager interface {
	// FindShiftDefinitionByID retrieves a specific shift definition.
	FindShiftDefinitionByID(ctx context.Context, definitionID string) (*domain.ShiftDefinition, error)

	// ListShiftDefinitions retrieves all active shift definitions for a restaurant.
	ListShiftDefinitions(ctx context.Context, restaurantID string) ([]domain.ShiftDefinition, error)

	// SaveShiftDefinition persists a new shift definition.
	SaveShiftDefinition(ctx context.Context, definition domain.ShiftDefinition) error

	// UpdateShiftDefinition updates an existing shift definition.
	UpdateShiftDefinition(ctx context.Context, definition domain.ShiftDefinition) error
}

// TableManager defines operations for physical tables and their QR tokens
type TableManager interface {
	// FindTableByID retrieves a specific table.
	FindTableByID(ctx context.Context, tableID string) (*domain.Table, error)

	// FindTableByQRToken retrieves a table by the opaque token in its printed QR code.
	FindTableByQRToken(ctx context.Context, qrToken string) (*domain.Table, error)

	// ListTables retrieves all tables for a restaurant.
	ListTables(ctx context.Context, restaurantID string) ([]domain.Table, error)

	// SaveTable persists a new table.
	SaveTable(ctx context.Context, table domain.Table) error

	// UpdateTable updates an existing table.
	UpdateTable(ctx context.Context, table domain.Table) error
}

// RestaurantRepositoryFacade combines all restaurant-related repository interfaces
// This is a facade for clients that need access to all operations
type RestaurantRepositoryFacade interface {
	RestaurantReader
	RestaurantWriter
	ShiftDefinitionManager
	TableManager
}
