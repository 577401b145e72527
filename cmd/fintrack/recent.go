package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrack/backend/internal/application/usecase/transaction"
)

func recentCmd(defaultLimit int) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent <export.csv>",
		Short: "List the most recent transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := loadStore(ctx, args[0])
			if err != nil {
				return err
			}

			output, err := transaction.NewListRecentTransactionsUseCase(s, defaultLimit).Execute(ctx, transaction.ListRecentTransactionsInput{
				Limit: &limit,
			})
			if err != nil {
				return err
			}

			table := newTable(cmd.OutOrStdout(), "Date", "Type", "Category", "Amount", "Note")
			for _, txn := range output.Transactions {
				table.Append([]string{
					txn.Date.Format(time.DateOnly),
					string(txn.Type),
					txn.Category.Name,
					txn.Amount.String(),
					txn.Note,
				})
			}
			table.Render()

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultLimit, "number of transactions to show")

	return cmd
}
