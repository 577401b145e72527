// Package adapter defines interfaces that will be implemented outside the use case layer.
package adapter

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// NewTransactionInput holds the caller-supplied fields of a new transaction.
// ID and CreatedAt are assigned by the store.
type NewTransactionInput struct {
	Type         entity.TransactionType
	Amount       decimal.Decimal
	CategoryName string
	Date         time.Time
	Note         string
}

// TransactionStore defines the read/write surface of the transaction store.
// Every returned value is a copy; callers never see the backing collection.
type TransactionStore interface {
	// Add validates and inserts a new transaction as the most recent one.
	Add(input NewTransactionInput) (entity.Transaction, error)

	// Update merges patch onto the transaction with the given id, keeping its position.
	Update(id uuid.UUID, patch entity.TransactionPatch) (entity.Transaction, error)

	// Delete removes the transaction with the given id. Unknown ids are a no-op.
	Delete(id uuid.UUID) bool

	// Clear removes every transaction and returns how many were removed.
	Clear() int

	// Get returns the transaction with the given id.
	Get(id uuid.UUID) (entity.Transaction, error)

	// List returns all transactions newest first, optionally filtered by type.
	List(transactionType *entity.TransactionType) []entity.Transaction

	// Count returns the number of transactions, optionally filtered by type.
	Count(transactionType *entity.TransactionType) int

	// Recent returns up to limit transactions, newest first.
	Recent(limit int) []entity.Transaction

	// Balance returns total income minus total expenses.
	Balance() decimal.Decimal

	// TotalByType returns the sum of amounts of the given type.
	TotalByType(transactionType entity.TransactionType) decimal.Decimal

	// AggregateByCategory groups transactions by category name, sorted by total descending.
	AggregateByCategory() []entity.CategorySummary

	// Categories returns the fixed category catalog.
	Categories() []entity.Category

	// CategoriesByType returns the catalog entries of the given type.
	CategoriesByType(categoryType entity.CategoryType) []entity.Category

	// CategoryByName looks up a catalog entry by its name.
	CategoryByName(name string) (entity.Category, bool)
}
