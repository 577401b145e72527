// Package store implements the in-memory transaction store and its derived queries.
package store

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

const (
	// MaxNoteLength is the maximum allowed length for transaction notes.
	MaxNoteLength = 1000
	// DefaultRecentLimit is the number of transactions shown in recent-activity views.
	DefaultRecentLimit = 5
	// MaxAmountScale is the number of decimal places an amount may carry.
	MaxAmountScale = 2
	// MaxAmountIntegerDigits bounds the integer part of an amount.
	MaxAmountIntegerDigits = 13

	// maxAmountDigits caps the raw coefficient and exponent before any rescaling.
	maxAmountDigits = 32
)

var _ adapter.TransactionStore = (*Store)(nil)

// Store owns the transaction collection and the category catalog.
// Transactions are kept newest first.
type Store struct {
	mu           sync.RWMutex
	transactions []entity.Transaction
	catalog      *catalog
	version      uint64

	summary      []entity.CategorySummary
	summaryValid bool
	summaryAt    uint64

	now    func() time.Time
	newID  func() (uuid.UUID, error)
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for CreatedAt and default dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator sets the transaction id generator.
func WithIDGenerator(newID func() (uuid.UUID, error)) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// WithLogger sets the logger used for data-quality warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store with a fixed category catalog.
// Category names must be unique.
func New(categories []entity.Category, opts ...Option) (*Store, error) {
	cat, err := newCatalog(categories)
	if err != nil {
		return nil, fmt.Errorf("failed to build category catalog: %w", err)
	}

	s := &Store{
		transactions: make([]entity.Transaction, 0),
		catalog:      cat,
		now:          time.Now,
		newID:        uuid.NewV7,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Add validates input and inserts a new transaction at the front of the sequence.
func (s *Store) Add(input adapter.NewTransactionInput) (entity.Transaction, error) {
	id, err := s.newID()
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("failed to generate transaction id: %w", err)
	}

	now := s.now()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	txn := entity.NewTransaction(
		id,
		input.Type,
		input.Amount,
		strings.TrimSpace(input.CategoryName),
		date,
		strings.TrimSpace(input.Note),
		now,
	)

	if err := validate(txn); err != nil {
		return entity.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkCategory(txn)
	s.transactions = slices.Insert(s.transactions, 0, txn)
	s.version++

	return txn, nil
}

// Update merges patch onto the transaction with the given id.
// The transaction keeps its position in the sequence.
func (s *Store) Update(id uuid.UUID, patch entity.TransactionPatch) (entity.Transaction, error) {
	if patch.CategoryName != nil {
		name := strings.TrimSpace(*patch.CategoryName)
		patch.CategoryName = &name
	}
	if patch.Note != nil {
		note := strings.TrimSpace(*patch.Note)
		patch.Note = &note
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return entity.Transaction{}, fmt.Errorf("transaction %s: %w", id, domainerror.ErrTransactionNotFound)
	}

	updated := patch.Apply(s.transactions[i])
	if err := validate(updated); err != nil {
		return entity.Transaction{}, err
	}

	if patch.Type != nil || patch.CategoryName != nil {
		s.checkCategory(updated)
	}
	s.transactions[i] = updated
	s.version++

	return updated, nil
}

// Delete removes the transaction with the given id and reports whether it existed.
func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.transactions = slices.Delete(s.transactions, i, i+1)
	s.version++
	return true
}

// Clear removes every transaction.
func (s *Store) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.transactions)
	s.transactions = make([]entity.Transaction, 0)
	s.version++
	return removed
}

// Get returns the transaction with the given id.
func (s *Store) Get(id uuid.UUID) (entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return entity.Transaction{}, fmt.Errorf("transaction %s: %w", id, domainerror.ErrTransactionNotFound)
	}
	return s.transactions[i], nil
}

// List returns the transactions newest first, filtered by type when one is given.
func (s *Store) List(transactionType *entity.TransactionType) []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if transactionType == nil {
		return slices.Clone(s.transactions)
	}

	out := make([]entity.Transaction, 0, len(s.transactions))
	for _, txn := range s.transactions {
		if txn.Type == *transactionType {
			out = append(out, txn)
		}
	}
	return out
}

// Count returns the number of transactions, filtered by type when one is given.
func (s *Store) Count(transactionType *entity.TransactionType) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if transactionType == nil {
		return len(s.transactions)
	}

	n := 0
	for _, txn := range s.transactions {
		if txn.Type == *transactionType {
			n++
		}
	}
	return n
}

// Recent returns the first limit transactions of the newest-first sequence.
func (s *Store) Recent(limit int) []entity.Transaction {
	if limit <= 0 {
		return []entity.Transaction{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	limit = min(limit, len(s.transactions))
	return slices.Clone(s.transactions[:limit])
}

// Balance returns total income minus total expenses.
func (s *Store) Balance() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balance := decimal.Zero
	for _, txn := range s.transactions {
		balance = balance.Add(txn.SignedAmount())
	}
	return balance
}

// TotalByType returns the sum of amounts of the given type.
func (s *Store) TotalByType(transactionType entity.TransactionType) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, txn := range s.transactions {
		if txn.Type == transactionType {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// AggregateByCategory returns one summary per distinct category name,
// sorted by total descending. Ties keep first-encountered order.
func (s *Store) AggregateByCategory() []entity.CategorySummary {
	s.mu.RLock()
	if s.summaryValid && s.summaryAt == s.version {
		out := slices.Clone(s.summary)
		s.mu.RUnlock()
		return out
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.summaryValid || s.summaryAt != s.version {
		s.summary = s.aggregate()
		s.summaryAt = s.version
		s.summaryValid = true
	}
	return slices.Clone(s.summary)
}

// Categories returns the category catalog.
func (s *Store) Categories() []entity.Category {
	return s.catalog.all()
}

// CategoriesByType returns the catalog entries of the given type.
func (s *Store) CategoriesByType(categoryType entity.CategoryType) []entity.Category {
	return s.catalog.byType(categoryType)
}

// CategoryByName looks up a catalog entry by its name.
func (s *Store) CategoryByName(name string) (entity.Category, bool) {
	return s.catalog.lookup(name)
}

// Version returns a counter that changes on every mutation.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// aggregate must be called with s.mu held.
func (s *Store) aggregate() []entity.CategorySummary {
	index := make(map[string]int)
	out := make([]entity.CategorySummary, 0)

	for _, txn := range s.transactions {
		i, ok := index[txn.CategoryName]
		if !ok {
			out = append(out, entity.CategorySummary{
				Name:  txn.CategoryName,
				Total: decimal.Zero,
				Type:  txn.Type,
				Color: s.catalog.colorFor(txn.CategoryName),
			})
			i = len(out) - 1
			index[txn.CategoryName] = i
		}
		out[i].Total = out[i].Total.Add(txn.Amount)
		out[i].Count++
	}

	slices.SortStableFunc(out, func(a, b entity.CategorySummary) int {
		return b.Total.Cmp(a.Total)
	})
	return out
}

// indexOf must be called with s.mu held.
func (s *Store) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.transactions, func(t entity.Transaction) bool {
		return t.ID == id
	})
}

// checkCategory logs references to unknown categories or categories of the other type.
// Neither is rejected.
func (s *Store) checkCategory(txn entity.Transaction) {
	cat, ok := s.catalog.lookup(txn.CategoryName)
	if !ok {
		s.logger.Warn("Transaction references unknown category",
			"transactionID", txn.ID,
			"category", txn.CategoryName,
		)
		return
	}
	if cat.Type != txn.Type {
		s.logger.Warn("Transaction type does not match category type",
			"transactionID", txn.ID,
			"category", txn.CategoryName,
			"transactionType", txn.Type,
			"categoryType", cat.Type,
		)
	}
}

func validate(txn entity.Transaction) error {
	if !txn.Type.IsValid() {
		return domainerror.NewValidationError(
			domainerror.FieldType,
			"must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !txn.Amount.IsPositive() {
		return domainerror.NewValidationError(
			domainerror.FieldAmount,
			"must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if reason := checkAmountRange(txn.Amount); reason != "" {
		return domainerror.NewValidationError(
			domainerror.FieldAmount,
			reason,
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if txn.CategoryName == "" {
		return domainerror.NewValidationError(
			domainerror.FieldCategory,
			"is required",
			domainerror.ErrMissingCategory,
		)
	}

	if utf8.RuneCountInString(txn.Note) > MaxNoteLength {
		return domainerror.NewValidationError(
			domainerror.FieldNote,
			fmt.Sprintf("must not exceed %d characters", MaxNoteLength),
			domainerror.ErrNotesTooLong,
		)
	}

	return nil
}

// checkAmountRange works on the coefficient and exponent first so inputs like
// 1e100000000 are rejected without being expanded.
func checkAmountRange(amount decimal.Decimal) string {
	digits, exp := amount.NumDigits(), int(amount.Exponent())
	if digits > maxAmountDigits || digits+exp > MaxAmountIntegerDigits {
		return fmt.Sprintf("must have at most %d integer digits", MaxAmountIntegerDigits)
	}
	if exp < -maxAmountDigits || !amount.Equal(amount.Truncate(MaxAmountScale)) {
		return fmt.Sprintf("must have at most %d decimal places", MaxAmountScale)
	}
	return ""
}
