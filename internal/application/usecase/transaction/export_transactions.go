package transaction

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/fintrack/backend/internal/application/adapter"
)

// ExportHeader lists the CSV columns in export order.
var ExportHeader = []string{"id", "date", "type", "category", "amount", "note", "created_at"}

// ExportTransactionsOutput represents the output of a CSV export.
type ExportTransactionsOutput struct {
	Filename string
	Data     []byte
	Count    int
}

// ExportTransactionsUseCase renders the current transactions as CSV, newest first.
type ExportTransactionsUseCase struct {
	store adapter.TransactionStore
	now   func() time.Time
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(store adapter.TransactionStore, now func() time.Time) *ExportTransactionsUseCase {
	if now == nil {
		now = time.Now
	}
	return &ExportTransactionsUseCase{
		store: store,
		now:   now,
	}
}

// Execute performs the export.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context) (*ExportTransactionsOutput, error) {
	transactions := uc.store.List(nil)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ExportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, txn := range transactions {
		record := []string{
			txn.ID.String(),
			txn.Date.Format(time.DateOnly),
			string(txn.Type),
			txn.CategoryName,
			txn.Amount.String(),
			txn.Note,
			txn.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return &ExportTransactionsOutput{
		Filename: fmt.Sprintf("transactions-%s.csv", uc.now().UTC().Format("20060102")),
		Data:     buf.Bytes(),
		Count:    len(transactions),
	}, nil
}
