package dto

import (
	"github.com/fintrack/backend/internal/application/usecase/category"
)

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Color            string `json:"color"`
	Icon             string `json:"icon"`
	Type             string `json:"type"`
	TransactionCount int    `json:"transaction_count"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryListResponse converts a ListCategoriesOutput to CategoryListResponse.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(output.Categories))
	for i, cat := range output.Categories {
		categories[i] = CategoryResponse{
			ID:               cat.ID,
			Name:             cat.Name,
			Color:            cat.Color,
			Icon:             cat.Icon,
			Type:             string(cat.Type),
			TransactionCount: cat.TransactionCount,
		}
	}
	return CategoryListResponse{Categories: categories}
}
