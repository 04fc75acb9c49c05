package dto

import (
	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// CreateRestaurantRequest defines data for creating a new restaurant.
type CreateRestaurantRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required,slug"`
}

// UpdateRestaurantRequest defines the data allowed for updating a restaurant.
type UpdateRestaurantRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

// RestaurantResponse defines data returned for a restaurant.
type RestaurantResponse struct {
	RestaurantID string `json:"restaurantID"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	IsActive     bool   `json:"isActive"`
}

// ToRestaurantResponse converts domain.Restaurant to DTO.
func ToRestaurantResponse(r *domain.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		RestaurantID: r.RestaurantID,
		Name:         r.Name,
		Slug:         r.Slug,
		IsActive:     r.IsActive,
	}
}

// ShiftDefinitionRequest defines data for creating or updating a work schedule.
type ShiftDefinitionRequest struct {
	Name      string `json:"name" binding:"required"`
	StartTime string `json:"startTime" binding:"required,clocktime"`
	EndTime   string `json:"endTime" binding:"required,clocktime"`
}

// ShiftDefinitionResponse defines data returned for a work schedule.
type ShiftDefinitionResponse struct {
	DefinitionID string `json:"definitionID"`
	Name         string `json:"name"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	IsActive     bool   `json:"isActive"`
}

// ToShiftDefinitionResponse converts domain.ShiftDefinition to DTO.
func ToShiftDefinitionResponse(d *domain.ShiftDefinition) ShiftDefinitionResponse {
	return ShiftDefinitionResponse{
		DefinitionID: d.DefinitionID,
		Name:         d.Name,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		IsActive:     d.IsActive,
	}
}

// ListShiftDefinitionsResponse wraps the list of work schedules.
type ListShiftDefinitionsResponse struct {
	Definitions []ShiftDefinitionResponse `json:"definitions"`
}

// ToListShiftDefinitionsResponse converts a slice of domain.ShiftDefinition to DTO.
func ToListShiftDefinitionsResponse(ds []domain.ShiftDefinition) ListShiftDefinitionsResponse {
	out := make([]ShiftDefinitionResponse, len(ds))
	for i, d := range ds {
		out[i] = ToShiftDefinitionResponse(&d)
	}
	return ListShiftDefinitionsResponse{Definitions: out}
}

// CreateTableRequest defines data for registering a physical table.
type CreateTableRequest struct {
	Name string `json:"name" binding:"required"`
}

// TableResponse defines data returned for a table.
type TableResponse struct {
	TableID  string `json:"tableID"`
	Name     string `json:"name"`
	QRToken  string `json:"qrToken"`
	IsActive bool   `json:"isActive"`
}

// ToTableResponse converts domain.Table to DTO.
func ToTableResponse(t *domain.Table) TableResponse {
	return TableResponse{
		TableID:  t.TableID,
		Name:     t.Name,
		QRToken:  t.QRToken,
		IsActive: t.IsActive,
	}
}

// ListTablesResponse wraps the list of tables.
type ListTablesResponse struct {
	Tables []TableResponse `json:"tables"`
}

// ToListTablesResponse converts a slice of domain.Table to DTO.
func ToListTablesResponse(ts []domain.Table) ListTablesResponse {
	out := make([]TableResponse, len(ts))
	for i, t := range ts {
		out[i] = ToTableResponse(&t)
	}
	return ListTablesResponse{Tables: out}
}
