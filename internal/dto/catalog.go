package dto

import (
	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines data for creating a menu category.
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name      *string `json:"name"`
	SortOrder *int    `json:"sortOrder"`
	IsActive  *bool   `json:"isActive"`
}

// CategoryResponse defines data returned for a category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	SortOrder  int    `json:"sortOrder"`
	IsActive   bool   `json:"isActive"`
}

// ToCategoryResponse converts domain.Category to DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		SortOrder:  c.SortOrder,
		IsActive:   c.IsActive,
	}
}

// CreateProductRequest defines data for creating a product.
type CreateProductRequest struct {
	CategoryID  string          `json:"categoryID" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"imageURL"`
	SortOrder   int             `json:"sortOrder"`
}

// UpdateProductRequest defines the data allowed for updating a product.
type UpdateProductRequest struct {
	CategoryID  *string          `json:"categoryID"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"imageURL"`
	SortOrder   *int             `json:"sortOrder"`
	IsActive    *bool            `json:"isActive"`
}

// ProductResponse defines data returned for a product.
type ProductResponse struct {
	ProductID   string          `json:"productID"`
	CategoryID  string          `json:"categoryID"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageURL,omitempty"`
	SortOrder   int             `json:"sortOrder"`
	IsActive    bool            `json:"isActive"`
}

// ToProductResponse converts domain.Product to DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		SortOrder:   p.SortOrder,
		IsActive:    p.IsActive,
	}
}

// ListProductsResponse wraps a list of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToListProductsResponse converts a slice of domain.Product to DTO.
func ToListProductsResponse(ps []domain.Product) ListProductsResponse {
	out := make([]ProductResponse, len(ps))
	for i, p := range ps {
		out[i] = ToProductResponse(&p)
	}
	return ListProductsResponse{Products: out}
}

// MenuSection is one category with its products on the public menu.
type MenuSection struct {
	Category CategoryResponse  `json:"category"`
	Products []ProductResponse `json:"products"`
}

// MenuResponse is the public menu for one restaurant, served by slug.
type MenuResponse struct {
	RestaurantID string        `json:"restaurantID"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Sections     []MenuSection `json:"sections"`
}
