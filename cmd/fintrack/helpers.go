package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/fintrack/backend/internal/application/store"
	"github.com/fintrack/backend/internal/application/usecase/transaction"
	"github.com/fintrack/backend/internal/domain/entity"
)

// loadStore builds a store seeded with the default catalog and imports the CSV at path.
func loadStore(ctx context.Context, path string) (*store.Store, error) {
	s, err := store.New(entity.DefaultCategories())
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction store: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := transaction.NewImportTransactionsUseCase(s).Execute(ctx, transaction.ImportTransactionsInput{
		Reader: f,
	}); err != nil {
		return nil, fmt.Errorf("failed to import %s: %w", path, err)
	}

	return s, nil
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}
