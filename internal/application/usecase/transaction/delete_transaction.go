package transaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
// Deleted is false when no transaction had the given id.
type DeleteTransactionOutput struct {
	Deleted bool
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	store adapter.TransactionStore
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(store adapter.TransactionStore) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		store: store,
	}
}

// Execute performs the transaction deletion. Deleting an unknown id is not an error.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	deleted := uc.store.Delete(input.TransactionID)
	if !deleted {
		slog.Debug("Delete requested for unknown transaction", "transactionID", input.TransactionID)
	}

	return &DeleteTransactionOutput{
		Deleted: deleted,
	}, nil
}
