package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintrack/backend/internal/application/usecase/dashboard"
	"github.com/fintrack/backend/internal/domain/entity"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <export.csv>",
		Short: "Show balance and spending by category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := loadStore(ctx, args[0])
			if err != nil {
				return err
			}

			summary, err := dashboard.NewGetSummaryUseCase(s, 0).Execute(ctx, dashboard.GetSummaryInput{})
			if err != nil {
				return err
			}
			breakdown, err := dashboard.NewGetCategoryBreakdownUseCase(s).Execute(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			totals := newTable(out, "Balance", "Income", "Expenses", "Transactions", "Average expense")
			totals.Append([]string{
				summary.Balance.String(),
				summary.TotalIncome.String(),
				summary.TotalExpenses.String(),
				fmt.Sprint(summary.TransactionCount),
				breakdown.AverageExpense.StringFixed(2),
			})
			totals.Render()

			categories := newTable(out, "Category", "Type", "Amount", "Share", "Count")
			for _, item := range breakdown.Categories {
				share := fmt.Sprintf("%.1f%%", item.Percentage)
				if item.Type == entity.TransactionTypeIncome {
					share += " of income"
				}
				categories.Append([]string{
					item.CategoryName,
					string(item.Type),
					item.Amount.String(),
					share,
					fmt.Sprint(item.TransactionCount),
				})
			}
			categories.Render()

			return nil
		},
	}
}
