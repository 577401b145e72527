package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintrack/backend/internal/application/store"
	"github.com/fintrack/backend/internal/application/usecase/category"
	"github.com/fintrack/backend/internal/domain/entity"
)

func categoriesCmd() *cobra.Command {
	var categoryType string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the category catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := store.New(entity.DefaultCategories())
			if err != nil {
				return err
			}

			input := category.ListCategoriesInput{}
			if categoryType != "" {
				t := entity.CategoryType(categoryType)
				input.CategoryType = &t
			}

			output, err := category.NewListCategoriesUseCase(s).Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			table := newTable(cmd.OutOrStdout(), "ID", "Name", "Type", "Icon", "Color")
			for _, c := range output.Categories {
				table.Append([]string{fmt.Sprint(c.ID), c.Name, string(c.Type), c.Icon, c.Color})
			}
			table.Render()

			return nil
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", "", "only list expense or income categories")

	return cmd
}
