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

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email address.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by email")
		}
		return nil, err
	}
	return user, nil
}

// ListUsers retrieves a paginated list of a restaurant's staff.
func (s *userService) ListUsers(ctx context.Context, restaurantID string, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	users, err := s.userRepo.ListUsersByRestaurant(ctx, restaurantID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// CreateUser creates a new staff member. The creator must be able to manage
// users; only the unrestricted role may mint other unrestricted users.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creator *domain.User) (*domain.User, error) {
	if err := s.RequirePermission(ctx, creator, domain.PermManageUsers); err != nil {
		return nil, err
	}
	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}
	if role == domain.RoleUnrestricted && creator.Role != domain.RoleUnrestricted {
		return nil, apperrors.ErrForbidden
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	restaurantID := req.RestaurantID
	if restaurantID == "" && creator.RestaurantID != nil {
		restaurantID = *creator.RestaurantID
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creator.UserID,
		},
	}
	if restaurantID != "" {
		user.RestaurantID = &restaurantID
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, err
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(role)))
	return &user, nil
}

// UpdateUser updates an existing user.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUser *domain.User) (*domain.User, error) {
	// Users may edit their own name; anything else requires user management.
	selfEdit := requestingUser != nil && requestingUser.UserID == userID && req.Role == nil
	if !selfEdit {
		if err := s.RequirePermission(ctx, requestingUser, domain.PermManageUsers); err != nil {
			return nil, err
		}
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, *req.Role)
		}
		if role == domain.RoleUnrestricted && requestingUser.Role != domain.RoleUnrestricted {
			return nil, apperrors.ErrForbidden
		}
		user.Role = role
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUser.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

// UpdateRefreshToken updates the refresh token details for a user.
func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, &refreshTokenHash, &refreshTokenExpiryTime)
}

// ClearRefreshToken clears the refresh token for a user.
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, nil, nil)
}

// DeleteUser marks a user as deleted (soft delete).
func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUser *domain.User) error {
	if err := s.RequirePermission(ctx, requestingUser, domain.PermManageUsers); err != nil {
		return err
	}
	if requestingUser.UserID == userID {
		return fmt.Errorf("%w: cannot delete own account", apperrors.ErrValidation)
	}
	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), requestingUser.UserID); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}

// AuthenticateUser authenticates a user with email and password.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// FindOrCreateGoogleUser resolves a Google login to a local user, provisioning
// one on first sign-in. Provisioned users start without a restaurant
// assignment or permissions.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	if info == nil || info.Email == "" {
		return nil, apperrors.ErrValidation
	}

	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	newUser := domain.User{
		UserID: uuid.NewString(),
		Name:   info.Name,
		Email:  info.Email,
		Role:   domain.RoleWaiter,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "google-oauth",
			LastUpdatedAt: now,
			LastUpdatedBy: "google-oauth",
		},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to provision user from Google login")
		return nil, err
	}
	s.LogInfo(ctx, "User provisioned from Google login", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}
