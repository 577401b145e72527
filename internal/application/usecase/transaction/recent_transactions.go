package transaction

import (
	"context"

	"github.com/fintrack/backend/internal/application/adapter"
)

// MaxRecentLimit caps the number of recent transactions a caller can request.
const MaxRecentLimit = 100

// ListRecentTransactionsInput represents the input for listing recent transactions.
// A nil Limit uses the configured default; zero or negative yields an empty list.
type ListRecentTransactionsInput struct {
	Limit *int
}

// ListRecentTransactionsOutput represents the output of listing recent transactions.
type ListRecentTransactionsOutput struct {
	Transactions []*TransactionOutput
	Limit        int
}

// ListRecentTransactionsUseCase returns the most recently added transactions.
type ListRecentTransactionsUseCase struct {
	store        adapter.TransactionStore
	defaultLimit int
}

// NewListRecentTransactionsUseCase creates a new ListRecentTransactionsUseCase instance.
func NewListRecentTransactionsUseCase(store adapter.TransactionStore, defaultLimit int) *ListRecentTransactionsUseCase {
	return &ListRecentTransactionsUseCase{
		store:        store,
		defaultLimit: defaultLimit,
	}
}

// Execute lists the recent transactions.
func (uc *ListRecentTransactionsUseCase) Execute(ctx context.Context, input ListRecentTransactionsInput) (*ListRecentTransactionsOutput, error) {
	limit := uc.defaultLimit
	if input.Limit != nil {
		limit = *input.Limit
	}
	limit = min(limit, MaxRecentLimit)

	return &ListRecentTransactionsOutput{
		Transactions: ToTransactionOutputs(uc.store, uc.store.Recent(limit)),
		Limit:        max(limit, 0),
	}, nil
}
