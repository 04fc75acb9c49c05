package services

import (
	"context"
	"log/slog"

	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/sazonapp/pos_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// RequirePermission checks that the user's role grants the permission.
// The unrestricted role passes every check.
func (s *BaseService) RequirePermission(ctx context.Context, user *domain.User, perm domain.Permission) error {
	if user == nil {
		return apperrors.ErrUnauthorized
	}
	if !user.Role.Can(perm) {
		s.LogDebug(ctx, "Permission denied",
			slog.String("user_id", user.UserID),
			slog.String("role", string(user.Role)),
			slog.String("permission", string(perm)))
		return apperrors.ErrForbidden
	}
	return nil
}

// RequireRestaurant returns the user's restaurant assignment or ErrForbidden.
func (s *BaseService) RequireRestaurant(user *domain.User) (string, error) {
	if user == nil {
		return "", apperrors.ErrUnauthorized
	}
	if user.RestaurantID == nil || *user.RestaurantID == "" {
		return "", apperrors.ErrForbidden
	}
	return *user.RestaurantID, nil
}
