package entity

import "github.com/shopspring/decimal"

// CategorySummary is the per-category rollup of stored transactions.
type CategorySummary struct {
	Name  string
	Total decimal.Decimal
	Count int
	Type  TransactionType
	Color string
}
