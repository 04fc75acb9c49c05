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
	"github.com/sazonapp/pos_backend/internal/utils"
)

// restaurantService implements the RestaurantSvcFacade interface
type restaurantService struct {
	BaseService
	restaurantRepo portsrepo.RestaurantRepositoryFacade
}

// NewRestaurantService creates a new restaurant service with the provided dependencies
func NewRestaurantService(restaurantRepo portsrepo.RestaurantRepositoryFacade) portssvc.RestaurantSvcFacade {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
	}
}

var _ portssvc.RestaurantSvcFacade = (*restaurantService)(nil)

// CreateRestaurant provisions a new tenant. The default cashbox is created
// lazily on first lookup, so provisioning stays a single insert.
func (s *restaurantService) CreateRestaurant(ctx context.Context, user *domain.User, req dto.CreateRestaurantRequest) (*domain.Restaurant, error) {
	if user == nil || user.Role != domain.RoleUnrestricted {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	restaurant := domain.Restaurant{
		RestaurantID: uuid.NewString(),
		Name:         req.Name,
		Slug:         req.Slug,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     user.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: user.UserID,
		},
	}
	if err := s.restaurantRepo.SaveRestaurant(ctx, restaurant); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: slug already in use", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save restaurant")
		return nil, err
	}

	s.LogInfo(ctx, "Restaurant created",
		slog.String("restaurant_id", restaurant.RestaurantID),
		slog.String("slug", restaurant.Slug))
	return &restaurant, nil
}

// UpdateRestaurant applies a partial update to a restaurant.
func (s *restaurantService) UpdateRestaurant(ctx context.Context, user *domain.User, restaurantID string, req dto.UpdateRestaurantRequest) (*domain.Restaurant, error) {
	if err := s.RequirePermission(ctx, user, domain.PermManageRestaurant); err != nil {
		return nil, err
	}

	restaurant, err := s.restaurantRepo.FindRestaurantByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.IsActive != nil {
		restaurant.IsActive = *req.IsActive
	}
	restaurant.LastUpdatedAt = time.Now()
	restaurant.LastUpdatedBy = user.UserID

	if err := s.restaurantRepo.UpdateRestaurant(ctx, *restaurant); err != nil {
		s.LogError(ctx, err, "Failed to update restaurant", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	return restaurant, nil
}

// GetRestaurant retrieves a restaurant by ID.
func (s *restaurantService) GetRestaurant(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	return s.restaurantRepo.FindRestaurantByID(ctx, restaurantID)
}

// GetRestaurantBySlug retrieves a restaurant by its public slug.
func (s *restaurantService) GetRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	return s.restaurantRepo.FindRestaurantBySlug(ctx, slug)
}

// CreateShiftDefinition adds a named work schedule.
func (s *restaurantService) CreateShiftDefinition(ctx context.Context, user *domain.User, req dto.ShiftDefinitionRequest) (*domain.ShiftDefinition, error) {
	restaurantID, err := s.RequireRestaurant(user)
	if err != nil {
		return nil, err
	}
	if err := s.RequirePermission(ctx, user, domain.PermManageRestaurant); err != nil {
		return nil, err
	}

	now := time.Now()
	definition := domain.ShiftDefinition{
		DefinitionID: uuid.NewString(),
		RestaurantID: restaurantID,
		Name:         req.Name,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     user.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: user.UserID,
		},
	}
	if err := s.restaurantRepo.SaveShiftDefinition(ctx, definition); err != nil {
		s.LogError(ctx, err, "Failed to save shift definition")
		return nil, err
	}
	return &definition, nil
}

// ListShiftDefinitions retrieves the restaurant's active work schedules.
func (s *restaurantService) ListShiftDefinitions(ctx context.Context, restaurantID string) ([]domain.ShiftDefinition, error) {
	definitions, err := s.restaurantRepo.ListShiftDefinitions(ctx, restaurantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shift definitions", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	if definitions == nil {
		return []domain.ShiftDefinition{}, nil
	}
	return definitions, nil
}

// CreateTable registers a physical table and mints its QR token.
func (s *restaurantService) CreateTable(ctx context.Context, user *domain.User, req dto.CreateTableRequest) (*domain.Table, error) {
	restaurantID, err := s.RequireRestaurant(user)
	if err != nil {
		return nil, err
	}
	if err := s.RequirePermission(ctx, user, domain.PermManageRestaurant); err != nil {
		return nil, err
	}

	qrToken, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr token: %w", err)
	}

	now := time.Now()
	table := domain.Table{
		TableID:      uuid.NewString(),
		RestaurantID: restaurantID,
		Name:         req.Name,
		QRToken:      qrToken,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     user.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: user.UserID,
		},
	}
	if err := s.restaurantRepo.SaveTable(ctx, table); err != nil {
		s.LogError(ctx, err, "Failed to save table")
		return nil, err
	}
	return &table, nil
}

// ListTables retrieves the restaurant's tables.
func (s *restaurantService) ListTables(ctx context.Context, restaurantID string) ([]domain.Table, error) {
	tables, err := s.restaurantRepo.ListTables(ctx, restaurantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tables", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	if tables == nil {
		return []domain.Table{}, nil
	}
	return tables, nil
}
