package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// CategoryBreakdownItem represents a single category in the breakdown.
type CategoryBreakdownItem struct {
	CategoryName     string
	CategoryColor    string
	CategoryIcon     string
	Type             entity.TransactionType
	Amount           decimal.Decimal
	Percentage       float64 // Share of the item's type total, one decimal place
	TransactionCount int
}

// GetCategoryBreakdownOutput represents the output of getting category breakdown.
type GetCategoryBreakdownOutput struct {
	Categories       []CategoryBreakdownItem // All categories, total descending
	Expenses         []CategoryBreakdownItem
	Incomes          []CategoryBreakdownItem
	TotalExpenses    decimal.Decimal
	TotalIncome      decimal.Decimal
	TransactionCount int
	ExpenseCount     int
	AverageExpense   decimal.Decimal
}

// GetCategoryBreakdownUseCase handles the per-category statistics view.
type GetCategoryBreakdownUseCase struct {
	store adapter.TransactionStore
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(store adapter.TransactionStore) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		store: store,
	}
}

// Execute builds the breakdown from the store's category aggregation.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context) (*GetCategoryBreakdownOutput, error) {
	totalExpenses := uc.store.TotalByType(entity.TransactionTypeExpense)
	totalIncome := uc.store.TotalByType(entity.TransactionTypeIncome)

	expenseType := entity.TransactionTypeExpense
	expenseCount := uc.store.Count(&expenseType)

	summaries := uc.store.AggregateByCategory()

	output := &GetCategoryBreakdownOutput{
		Categories:       make([]CategoryBreakdownItem, 0, len(summaries)),
		Expenses:         make([]CategoryBreakdownItem, 0),
		Incomes:          make([]CategoryBreakdownItem, 0),
		TotalExpenses:    totalExpenses,
		TotalIncome:      totalIncome,
		TransactionCount: uc.store.Count(nil),
		ExpenseCount:     expenseCount,
		AverageExpense:   decimal.Zero,
	}

	if expenseCount > 0 {
		output.AverageExpense = totalExpenses.Div(decimal.NewFromInt(int64(expenseCount))).Round(2)
	}

	for _, summary := range summaries {
		typeTotal := totalExpenses
		if summary.Type == entity.TransactionTypeIncome {
			typeTotal = totalIncome
		}

		item := CategoryBreakdownItem{
			CategoryName:     summary.Name,
			CategoryColor:    summary.Color,
			CategoryIcon:     entity.DefaultCategoryIcon,
			Type:             summary.Type,
			Amount:           summary.Total,
			Percentage:       percentage(summary.Total, typeTotal),
			TransactionCount: summary.Count,
		}
		if cat, ok := uc.store.CategoryByName(summary.Name); ok {
			item.CategoryIcon = cat.Icon
		}

		output.Categories = append(output.Categories, item)
		if item.Type == entity.TransactionTypeIncome {
			output.Incomes = append(output.Incomes, item)
		} else {
			output.Expenses = append(output.Expenses, item)
		}
	}

	return output, nil
}

// percentage returns part/total*100 rounded to one decimal place, or 0 for a zero total.
// A category holding records of both types can exceed 100.
func percentage(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	pct, _ := part.Mul(decimal.NewFromInt(100)).Div(total).Round(1).Float64()
	return pct
}
