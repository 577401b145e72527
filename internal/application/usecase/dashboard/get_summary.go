// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/application/usecase/transaction"
	"github.com/fintrack/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the home summary.
// A nil RecentLimit uses the configured default.
type GetSummaryInput struct {
	RecentLimit *int
}

// GetSummaryOutput represents the home summary.
type GetSummaryOutput struct {
	Balance          decimal.Decimal
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	TransactionCount int
	Recent           []*transaction.TransactionOutput
}

// GetSummaryUseCase builds the balance card and recent-activity list.
type GetSummaryUseCase struct {
	store        adapter.TransactionStore
	defaultLimit int
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(store adapter.TransactionStore, defaultLimit int) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		store:        store,
		defaultLimit: defaultLimit,
	}
}

// Execute builds the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	limit := uc.defaultLimit
	if input.RecentLimit != nil {
		limit = *input.RecentLimit
	}
	limit = min(limit, transaction.MaxRecentLimit)

	return &GetSummaryOutput{
		Balance:          uc.store.Balance(),
		TotalIncome:      uc.store.TotalByType(entity.TransactionTypeIncome),
		TotalExpenses:    uc.store.TotalByType(entity.TransactionTypeExpense),
		TransactionCount: uc.store.Count(nil),
		Recent:           transaction.ToTransactionOutputs(uc.store, uc.store.Recent(limit)),
	}, nil
}
