// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Type *entity.TransactionType
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID        uuid.UUID
	Type      entity.TransactionType
	Amount    decimal.Decimal
	Category  CategoryOutput
	Date      time.Time
	Note      string
	CreatedAt time.Time
}

// CategoryOutput represents category information in transaction output.
// Known is false when the name is not in the catalog; Icon and Color then hold the defaults.
type CategoryOutput struct {
	ID    int
	Name  string
	Color string
	Icon  string
	Type  entity.CategoryType
	Known bool
}

// TotalsOutput represents aggregated totals in the output.
type TotalsOutput struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Count        int
	Totals       TotalsOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	store adapter.TransactionStore
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(store adapter.TransactionStore) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		store: store,
	}
}

// Execute performs the transaction listing.
// Totals always cover the whole store, regardless of the type filter.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions := uc.store.List(input.Type)

	output := &ListTransactionsOutput{
		Transactions: ToTransactionOutputs(uc.store, transactions),
		Count:        len(transactions),
		Totals: TotalsOutput{
			IncomeTotal:  uc.store.TotalByType(entity.TransactionTypeIncome),
			ExpenseTotal: uc.store.TotalByType(entity.TransactionTypeExpense),
			NetTotal:     uc.store.Balance(),
		},
	}

	return output, nil
}

// ToTransactionOutputs converts store records, resolving category details from the catalog.
func ToTransactionOutputs(store adapter.TransactionStore, transactions []entity.Transaction) []*TransactionOutput {
	out := make([]*TransactionOutput, 0, len(transactions))
	for _, txn := range transactions {
		out = append(out, toTransactionOutput(store, txn))
	}
	return out
}

func toTransactionOutput(store adapter.TransactionStore, txn entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:        txn.ID,
		Type:      txn.Type,
		Amount:    txn.Amount,
		Category:  resolveCategory(store, txn),
		Date:      txn.Date,
		Note:      txn.Note,
		CreatedAt: txn.CreatedAt,
	}
}

// resolveCategory looks the name up in the catalog, falling back to the default icon and color.
func resolveCategory(store adapter.TransactionStore, txn entity.Transaction) CategoryOutput {
	cat, ok := store.CategoryByName(txn.CategoryName)
	if !ok {
		return CategoryOutput{
			Name:  txn.CategoryName,
			Color: entity.DefaultCategoryColor,
			Icon:  entity.DefaultCategoryIcon,
			Type:  txn.Type,
		}
	}

	return CategoryOutput{
		ID:    cat.ID,
		Name:  cat.Name,
		Color: cat.Color,
		Icon:  cat.Icon,
		Type:  cat.Type,
		Known: true,
	}
}
