package dto

import (
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// OpenShiftRequest defines the data for clocking into a shift.
type OpenShiftRequest struct {
	ShiftDefinitionID string `json:"shiftDefinitionID" binding:"required"`
}

// ShiftResponse defines data returned for a shift.
type ShiftResponse struct {
	ShiftID           string     `json:"shiftID"`
	UserID            string     `json:"userID"`
	RestaurantID      string     `json:"restaurantID"`
	ShiftType         string     `json:"shiftType"`
	ShiftDefinitionID string     `json:"shiftDefinitionID"`
	Status            string     `json:"status"`
	StartedAt         time.Time  `json:"startedAt"`
	EndedAt           *time.Time `json:"endedAt,omitempty"`
}

// ToShiftResponse converts domain.Shift to DTO.
func ToShiftResponse(s *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ShiftID:           s.ShiftID,
		UserID:            s.UserID,
		RestaurantID:      s.RestaurantID,
		ShiftType:         s.ShiftType,
		ShiftDefinitionID: s.ShiftDefinitionID,
		Status:            string(s.Status),
		StartedAt:         s.StartedAt,
		EndedAt:           s.EndedAt,
	}
}

// ListShiftsParams defines query parameters for listing shifts.
type ListShiftsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListShiftsResponse wraps the list of shifts.
type ListShiftsResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
}

// ToListShiftsResponse converts a slice of domain.Shift to DTO.
func ToListShiftsResponse(shifts []domain.Shift) ListShiftsResponse {
	out := make([]ShiftResponse, len(shifts))
	for i, s := range shifts {
		out[i] = ToShiftResponse(&s)
	}
	return ListShiftsResponse{Shifts: out}
}
