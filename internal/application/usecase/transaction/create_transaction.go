package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type         entity.TransactionType
	Amount       decimal.Decimal
	CategoryName string
	Date         time.Time // Zero means today
	Note         string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	store adapter.TransactionStore
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(store adapter.TransactionStore) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		store: store,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	transaction, err := uc.store.Add(adapter.NewTransactionInput{
		Type:         input.Type,
		Amount:       input.Amount,
		CategoryName: input.CategoryName,
		Date:         input.Date,
		Note:         input.Note,
	})
	if err != nil {
		return nil, mapStoreError("create transaction", err)
	}

	slog.Debug("Transaction created",
		"transactionID", transaction.ID,
		"type", transaction.Type,
		"category", transaction.CategoryName,
	)

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(uc.store, transaction),
	}, nil
}
