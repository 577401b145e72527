package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
)

// GetTransactionInput represents the input for fetching a single transaction.
type GetTransactionInput struct {
	TransactionID uuid.UUID
}

// GetTransactionOutput represents the output of fetching a single transaction.
type GetTransactionOutput struct {
	Transaction *TransactionOutput
}

// GetTransactionUseCase handles fetching a single transaction.
type GetTransactionUseCase struct {
	store adapter.TransactionStore
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(store adapter.TransactionStore) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		store: store,
	}
}

// Execute fetches the transaction.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, input GetTransactionInput) (*GetTransactionOutput, error) {
	transaction, err := uc.store.Get(input.TransactionID)
	if err != nil {
		return nil, mapStoreError("get transaction", err)
	}

	return &GetTransactionOutput{
		Transaction: toTransactionOutput(uc.store, transaction),
	}, nil
}
