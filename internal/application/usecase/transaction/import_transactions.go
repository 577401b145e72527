package transaction

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// requiredImportColumns must be present in the header of an import file.
var requiredImportColumns = []string{"type", "amount", "category"}

// ImportTransactionsInput represents the input for a CSV import.
type ImportTransactionsInput struct {
	Reader io.Reader
}

// ImportTransactionsOutput represents the output of a CSV import.
type ImportTransactionsOutput struct {
	Imported int
}

// ImportTransactionsUseCase loads transactions from a CSV file in export format.
// Rows are listed newest first, so they are added bottom-up to keep that order.
// The id and created_at columns are ignored; the store assigns fresh ones.
type ImportTransactionsUseCase struct {
	store adapter.TransactionStore
}

// NewImportTransactionsUseCase creates a new ImportTransactionsUseCase instance.
func NewImportTransactionsUseCase(store adapter.TransactionStore) *ImportTransactionsUseCase {
	return &ImportTransactionsUseCase{
		store: store,
	}
}

type importRow struct {
	line  int
	input adapter.NewTransactionInput
}

// Execute performs the import. Parse errors reject the whole file before anything is added.
// A row rejected by the store stops the import; rows added before it are kept and counted.
func (uc *ImportTransactionsUseCase) Execute(ctx context.Context, input ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	rows, err := parseImportRows(input.Reader)
	if err != nil {
		return nil, err
	}

	output := &ImportTransactionsOutput{}
	for i := len(rows) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return output, err
		}

		row := rows[i]
		if _, err := uc.store.Add(row.input); err != nil {
			return output, atLine(row.line, mapStoreError("import transaction", err))
		}
		output.Imported++
	}

	slog.Info("Transactions imported", "count", output.Imported)

	return output, nil
}

func parseImportRows(r io.Reader) ([]importRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalidImportFile("file is empty")
		}
		return nil, invalidImportFile(err.Error())
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredImportColumns {
		if _, ok := columns[name]; !ok {
			return nil, invalidImportFile(fmt.Sprintf("missing %q column", name))
		}
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []importRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, invalidImportFile(err.Error())
		}
		line, _ := reader.FieldPos(0)

		amount, err := decimal.NewFromString(field(record, "amount"))
		if err != nil {
			return nil, atLine(line, mapStoreError("parse amount", domainerror.NewValidationError(
				domainerror.FieldAmount,
				"must be a decimal number",
				domainerror.ErrInvalidTransactionAmount,
			)))
		}

		var date time.Time
		if raw := field(record, "date"); raw != "" {
			date, err = time.Parse(time.DateOnly, raw)
			if err != nil {
				return nil, atLine(line, mapStoreError("parse date", domainerror.NewValidationError(
					domainerror.FieldDate,
					"must use the YYYY-MM-DD format",
					domainerror.ErrInvalidTransactionDate,
				)))
			}
		}

		rows = append(rows, importRow{
			line: line,
			input: adapter.NewTransactionInput{
				Type:         entity.TransactionType(field(record, "type")),
				Amount:       amount,
				CategoryName: field(record, "category"),
				Date:         date,
				Note:         field(record, "note"),
			},
		})
	}

	return rows, nil
}

// atLine prefixes the error message with the CSV line it came from, keeping its code.
func atLine(line int, err error) error {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		return domainerror.NewTransactionError(txnErr.Code, fmt.Sprintf("line %d: %s", line, txnErr.Message), txnErr.Err)
	}
	return fmt.Errorf("line %d: %w", line, err)
}

func invalidImportFile(reason string) error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeInvalidImportFile,
		"invalid import file: "+reason,
		domainerror.ErrInvalidImportFile,
	)
}
