// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	CategoryType *entity.CategoryType // Optional filter by category type
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	ID               int
	Name             string
	Color            string
	Icon             string
	Type             entity.CategoryType
	TransactionCount int
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	store adapter.TransactionStore
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(store adapter.TransactionStore) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		store: store,
	}
}

// Execute performs the category listing in catalog order.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	var categories []entity.Category
	if input.CategoryType != nil {
		if !input.CategoryType.IsValid() {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryType,
				"category type must be 'expense' or 'income'",
				domainerror.ErrInvalidCategoryType,
			)
		}
		categories = uc.store.CategoriesByType(*input.CategoryType)
	} else {
		categories = uc.store.Categories()
	}

	counts := make(map[string]int)
	for _, summary := range uc.store.AggregateByCategory() {
		counts[summary.Name] = summary.Count
	}

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, 0, len(categories)),
	}
	for _, cat := range categories {
		output.Categories = append(output.Categories, &CategoryOutput{
			ID:               cat.ID,
			Name:             cat.Name,
			Color:            cat.Color,
			Icon:             cat.Icon,
			Type:             cat.Type,
			TransactionCount: counts[cat.Name],
		})
	}

	return output, nil
}
