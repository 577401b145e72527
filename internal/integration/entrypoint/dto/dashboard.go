package dto

import (
	"github.com/fintrack/backend/internal/application/usecase/dashboard"
)

// DashboardSummaryResponse represents the home screen summary.
type DashboardSummaryResponse struct {
	Balance          string                `json:"balance"`
	TotalIncome      string                `json:"total_income"`
	TotalExpenses    string                `json:"total_expenses"`
	TransactionCount int                   `json:"transaction_count"`
	Recent           []TransactionResponse `json:"recent"`
}

// CategoryBreakdownItemResponse represents a single category in the breakdown.
type CategoryBreakdownItemResponse struct {
	CategoryName     string  `json:"category_name"`
	CategoryColor    string  `json:"category_color"`
	CategoryIcon     string  `json:"category_icon"`
	Type             string  `json:"type"`
	Amount           string  `json:"amount"`
	Percentage       float64 `json:"percentage"`
	TransactionCount int     `json:"transaction_count"`
}

// CategoryBreakdownResponse represents the statistics screen payload.
type CategoryBreakdownResponse struct {
	Categories       []CategoryBreakdownItemResponse `json:"categories"`
	Expenses         []CategoryBreakdownItemResponse `json:"expenses"`
	Incomes          []CategoryBreakdownItemResponse `json:"incomes"`
	TotalExpenses    string                          `json:"total_expenses"`
	TotalIncome      string                          `json:"total_income"`
	TransactionCount int                             `json:"transaction_count"`
	AverageExpense   string                          `json:"average_expense"`
}

// ToDashboardSummaryResponse converts a GetSummaryOutput to its response DTO.
func ToDashboardSummaryResponse(output *dashboard.GetSummaryOutput) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		Balance:          output.Balance.String(),
		TotalIncome:      output.TotalIncome.String(),
		TotalExpenses:    output.TotalExpenses.String(),
		TransactionCount: output.TransactionCount,
		Recent:           ToTransactionResponses(output.Recent),
	}
}

// ToCategoryBreakdownResponse converts a GetCategoryBreakdownOutput to its response DTO.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	return CategoryBreakdownResponse{
		Categories:       toBreakdownItems(output.Categories),
		Expenses:         toBreakdownItems(output.Expenses),
		Incomes:          toBreakdownItems(output.Incomes),
		TotalExpenses:    output.TotalExpenses.String(),
		TotalIncome:      output.TotalIncome.String(),
		TransactionCount: output.TransactionCount,
		AverageExpense:   output.AverageExpense.StringFixed(2),
	}
}

func toBreakdownItems(items []dashboard.CategoryBreakdownItem) []CategoryBreakdownItemResponse {
	out := make([]CategoryBreakdownItemResponse, len(items))
	for i, item := range items {
		out[i] = CategoryBreakdownItemResponse{
			CategoryName:     item.CategoryName,
			CategoryColor:    item.CategoryColor,
			CategoryIcon:     item.CategoryIcon,
			Type:             string(item.Type),
			Amount:           item.Amount.String(),
			Percentage:       item.Percentage,
			TransactionCount: item.TransactionCount,
		}
	}
	return out
}
