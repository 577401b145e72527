package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/usecase/transaction"
)

// DateLayout is the wire format of transaction dates.
const DateLayout = "2006-01-02"

// CreateTransactionRequest represents the request body for transaction creation.
// Amount accepts a JSON number or a decimal string. Validation happens in the store.
type CreateTransactionRequest struct {
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date,omitempty"`
	Note     string          `json:"note,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type     *string          `json:"type,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Category *string          `json:"category,omitempty"`
	Date     *string          `json:"date,omitempty"`
	Note     *string          `json:"note,omitempty"`
}

// TransactionCategoryResponse represents category information in transaction response.
type TransactionCategoryResponse struct {
	ID    *int   `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Type  string `json:"type"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string                      `json:"id"`
	Type      string                      `json:"type"`
	Amount    string                      `json:"amount"`
	Category  TransactionCategoryResponse `json:"category"`
	Date      string                      `json:"date"`
	Note      string                      `json:"note"`
	CreatedAt time.Time                   `json:"created_at"`
}

// TransactionTotalsResponse represents aggregated totals in API responses.
type TransactionTotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	NetTotal     string `json:"net_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	Count        int                       `json:"count"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// RecentTransactionsResponse represents the response for the recent-activity list.
type RecentTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Limit        int                   `json:"limit"`
}

// ClearTransactionsResponse represents the response for clearing all transactions.
type ClearTransactionsResponse struct {
	DeletedCount int `json:"deleted_count"`
}

// ImportTransactionsResponse represents the response for a CSV import.
type ImportTransactionsResponse struct {
	Imported int `json:"imported"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:     txn.ID.String(),
		Type:   string(txn.Type),
		Amount: txn.Amount.String(),
		Category: TransactionCategoryResponse{
			Name:  txn.Category.Name,
			Color: txn.Category.Color,
			Icon:  txn.Category.Icon,
			Type:  string(txn.Category.Type),
		},
		Date:      txn.Date.Format(DateLayout),
		Note:      txn.Note,
		CreatedAt: txn.CreatedAt,
	}

	if txn.Category.Known {
		id := txn.Category.ID
		response.Category.ID = &id
	}

	return response
}

// ToTransactionResponses converts a slice of TransactionOutput to response DTOs.
func ToTransactionResponses(outputs []*transaction.TransactionOutput) []TransactionResponse {
	transactions := make([]TransactionResponse, len(outputs))
	for i, txn := range outputs {
		transactions[i] = ToTransactionResponse(txn)
	}
	return transactions
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{
		Transactions: ToTransactionResponses(output.Transactions),
		Count:        output.Count,
		Totals: TransactionTotalsResponse{
			IncomeTotal:  output.Totals.IncomeTotal.String(),
			ExpenseTotal: output.Totals.ExpenseTotal.String(),
			NetTotal:     output.Totals.NetTotal.String(),
		},
	}
}
