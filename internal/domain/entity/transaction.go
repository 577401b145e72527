// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the type is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a recorded income or expense event.
type Transaction struct {
	ID           uuid.UUID
	Type         TransactionType
	Amount       decimal.Decimal // Always positive; the sign comes from Type
	CategoryName string          // Category is referenced by name, not by id
	Date         time.Time       // Calendar date at UTC midnight
	Note         string
	CreatedAt    time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	id uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	categoryName string,
	date time.Time,
	note string,
	createdAt time.Time,
) Transaction {
	return Transaction{
		ID:           id,
		Type:         transactionType,
		Amount:       amount,
		CategoryName: categoryName,
		Date:         DateOnly(date),
		Note:         note,
		CreatedAt:    createdAt.UTC(),
	}
}

// SignedAmount returns the amount with income positive and expense negative.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionPatch holds a partial update for a transaction.
// Nil fields keep their current value.
type TransactionPatch struct {
	Type         *TransactionType
	Amount       *decimal.Decimal
	CategoryName *string
	Date         *time.Time
	Note         *string
}

// IsEmpty reports whether the patch changes nothing.
func (p TransactionPatch) IsEmpty() bool {
	return p.Type == nil && p.Amount == nil && p.CategoryName == nil && p.Date == nil && p.Note == nil
}

// Apply returns a copy of t with the patch fields overwritten.
func (p TransactionPatch) Apply(t Transaction) Transaction {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.CategoryName != nil {
		t.CategoryName = *p.CategoryName
	}
	if p.Date != nil {
		t.Date = DateOnly(*p.Date)
	}
	if p.Note != nil {
		t.Note = *p.Note
	}
	return t
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
