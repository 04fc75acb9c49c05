package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/middleware"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError maps service errors to HTTP status codes with a JSON body.
// Domain sentinel errors carry user-facing messages; anything unrecognized is
// a 500 with a generic message so internals never leak.
func respondWithError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			logger.Error(fallback, slog.String("error", err.Error()))
			c.JSON(appErr.Code, ErrorResponse{Error: fallback})
			return
		}
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// currentUser resolves the authenticated user from the request context. On
// failure it writes the response itself and returns nil.
func currentUser(c *gin.Context, userService portssvc.UserSvcFacade) *domain.User {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil
	}

	user, err := userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to resolve authenticated user")
		return nil
	}
	return user
}

// currentUserRestaurant resolves the user and requires a tenant assignment.
func currentUserRestaurant(c *gin.Context, userService portssvc.UserSvcFacade) (*domain.User, string) {
	user := currentUser(c, userService)
	if user == nil {
		return nil, ""
	}
	if user.RestaurantID == nil {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "No tienes un restaurante asignado"})
		return nil, ""
	}
	return user, *user.RestaurantID
}
