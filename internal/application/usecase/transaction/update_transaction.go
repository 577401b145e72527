package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	Type          *entity.TransactionType
	Amount        *decimal.Decimal
	CategoryName  *string
	Date          *time.Time
	Note          *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	store adapter.TransactionStore
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(store adapter.TransactionStore) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		store: store,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	patch := entity.TransactionPatch{
		Type:         input.Type,
		Amount:       input.Amount,
		CategoryName: input.CategoryName,
		Date:         input.Date,
		Note:         input.Note,
	}

	if patch.IsEmpty() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"at least one field must be provided",
			domainerror.ErrNoFieldsToUpdate,
		)
	}

	transaction, err := uc.store.Update(input.TransactionID, patch)
	if err != nil {
		return nil, mapStoreError("update transaction", err)
	}

	return &UpdateTransactionOutput{
		Transaction: toTransactionOutput(uc.store, transaction),
	}, nil
}
