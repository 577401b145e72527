package transaction

import (
	"context"
	"log/slog"

	"github.com/fintrack/backend/internal/application/adapter"
)

// ClearTransactionsOutput represents the output of clearing all transactions.
type ClearTransactionsOutput struct {
	DeletedCount int
}

// ClearTransactionsUseCase removes every transaction from the store.
type ClearTransactionsUseCase struct {
	store adapter.TransactionStore
}

// NewClearTransactionsUseCase creates a new ClearTransactionsUseCase instance.
func NewClearTransactionsUseCase(store adapter.TransactionStore) *ClearTransactionsUseCase {
	return &ClearTransactionsUseCase{
		store: store,
	}
}

// Execute clears the store.
func (uc *ClearTransactionsUseCase) Execute(ctx context.Context) (*ClearTransactionsOutput, error) {
	removed := uc.store.Clear()

	slog.Info("Transactions cleared", "deletedCount", removed)

	return &ClearTransactionsOutput{
		DeletedCount: removed,
	}, nil
}
