package dashboard

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/application/store"
	"github.com/fintrack/backend/internal/domain/entity"
)

func seededStore(t *testing.T, entries ...adapter.NewTransactionInput) *store.Store {
	t.Helper()
	s, err := store.New(entity.DefaultCategories())
	require.NoError(t, err)
	for _, e := range entries {
		_, err := s.Add(e)
		require.NoError(t, err)
	}
	return s
}

func expense(amount, category string) adapter.NewTransactionInput {
	return adapter.NewTransactionInput{
		Type:         entity.TransactionTypeExpense,
		Amount:       decimal.RequireFromString(amount),
		CategoryName: category,
	}
}

func income(amount, category string) adapter.NewTransactionInput {
	return adapter.NewTransactionInput{
		Type:         entity.TransactionTypeIncome,
		Amount:       decimal.RequireFromString(amount),
		CategoryName: category,
	}
}

func TestGetSummaryUseCase(t *testing.T) {
	s := seededStore(t,
		expense("50", "Comida"),
		income("1000", "Salario"),
		expense("30", "Transporte"),
	)
	uc := NewGetSummaryUseCase(s, store.DefaultRecentLimit)

	out, err := uc.Execute(context.Background(), GetSummaryInput{})
	require.NoError(t, err)

	assert.Equal(t, "920", out.Balance.String())
	assert.Equal(t, "1000", out.TotalIncome.String())
	assert.Equal(t, "80", out.TotalExpenses.String())
	assert.Equal(t, 3, out.TransactionCount)
	require.Len(t, out.Recent, 3)
	assert.Equal(t, "Transporte", out.Recent[0].Category.Name)

	limit := 2
	out, err = uc.Execute(context.Background(), GetSummaryInput{RecentLimit: &limit})
	require.NoError(t, err)
	require.Len(t, out.Recent, 2)
	assert.Equal(t, "Transporte", out.Recent[0].Category.Name)
	assert.Equal(t, "Salario", out.Recent[1].Category.Name)
}

func TestGetSummaryUseCase_Empty(t *testing.T) {
	out, err := NewGetSummaryUseCase(seededStore(t), store.DefaultRecentLimit).Execute(context.Background(), GetSummaryInput{})
	require.NoError(t, err)

	assert.True(t, out.Balance.IsZero())
	assert.Zero(t, out.TransactionCount)
	assert.Empty(t, out.Recent)
}

func TestGetCategoryBreakdownUseCase(t *testing.T) {
	t.Run("splits by type with percentages of each type total", func(t *testing.T) {
		s := seededStore(t,
			expense("50", "Comida"),
			income("1000", "Salario"),
			expense("30", "Transporte"),
		)

		out, err := NewGetCategoryBreakdownUseCase(s).Execute(context.Background())
		require.NoError(t, err)

		require.Len(t, out.Categories, 3)
		assert.Equal(t, "Salario", out.Categories[0].CategoryName)
		assert.Equal(t, "Comida", out.Categories[1].CategoryName)
		assert.Equal(t, "Transporte", out.Categories[2].CategoryName)

		require.Len(t, out.Expenses, 2)
		assert.Equal(t, 62.5, out.Expenses[0].Percentage)
		assert.Equal(t, 37.5, out.Expenses[1].Percentage)
		assert.Equal(t, "food", out.Expenses[0].CategoryIcon)

		require.Len(t, out.Incomes, 1)
		assert.Equal(t, 100.0, out.Incomes[0].Percentage)
		assert.Equal(t, "#22c55e", out.Incomes[0].CategoryColor)

		assert.Equal(t, "80", out.TotalExpenses.String())
		assert.Equal(t, "1000", out.TotalIncome.String())
		assert.Equal(t, 3, out.TransactionCount)
		assert.Equal(t, 2, out.ExpenseCount)
		assert.Equal(t, "40", out.AverageExpense.String())
	})

	t.Run("rounds percentages to one decimal place", func(t *testing.T) {
		s := seededStore(t,
			expense("10", "Comida"),
			expense("20", "Hogar"),
		)

		out, err := NewGetCategoryBreakdownUseCase(s).Execute(context.Background())
		require.NoError(t, err)

		require.Len(t, out.Expenses, 2)
		assert.Equal(t, 66.7, out.Expenses[0].Percentage)
		assert.Equal(t, 33.3, out.Expenses[1].Percentage)
		assert.Equal(t, "15", out.AverageExpense.String())
		assert.Empty(t, out.Incomes)
	})

	t.Run("unknown category uses default presentation", func(t *testing.T) {
		s := seededStore(t, expense("10", "Mascotas"))

		out, err := NewGetCategoryBreakdownUseCase(s).Execute(context.Background())
		require.NoError(t, err)

		require.Len(t, out.Expenses, 1)
		assert.Equal(t, entity.DefaultCategoryIcon, out.Expenses[0].CategoryIcon)
		assert.Equal(t, entity.DefaultCategoryColor, out.Expenses[0].CategoryColor)
	})

	t.Run("empty store", func(t *testing.T) {
		out, err := NewGetCategoryBreakdownUseCase(seededStore(t)).Execute(context.Background())
		require.NoError(t, err)

		assert.Empty(t, out.Categories)
		assert.NotNil(t, out.Expenses)
		assert.True(t, out.AverageExpense.IsZero())
	})
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		part     string
		total    string
		expected float64
	}{
		{"zero total", "5", "0", 0},
		{"whole", "5", "5", 100},
		{"third", "1", "3", 33.3},
		{"eighth", "1", "8", 12.5},
		{"small share", "1", "1000", 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := percentage(decimal.RequireFromString(tt.part), decimal.RequireFromString(tt.total))
			assert.Equal(t, tt.expected, got)
		})
	}
}
