package transaction

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

func importCSV(t *testing.T, content string) (*ImportTransactionsOutput, error) {
	t.Helper()
	s := newTestStore(t)
	return NewImportTransactionsUseCase(s).Execute(context.Background(), ImportTransactionsInput{
		Reader: strings.NewReader(content),
	})
}

func TestImportTransactionsUseCase_RoundTrip(t *testing.T) {
	source := newTestStore(t)
	create(t, source, entity.TransactionTypeIncome, "1000", "Salario")
	create(t, source, entity.TransactionTypeExpense, "50.25", "Comida")
	create(t, source, entity.TransactionTypeExpense, "30", "Transporte")

	exported, err := NewExportTransactionsUseCase(source, nil).Execute(context.Background())
	require.NoError(t, err)

	target := newTestStore(t)
	out, err := NewImportTransactionsUseCase(target).Execute(context.Background(), ImportTransactionsInput{
		Reader: bytes.NewReader(exported.Data),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Imported)

	want := source.List(nil)
	got := target.List(nil)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].CategoryName, got[i].CategoryName)
		assert.True(t, want[i].Amount.Equal(got[i].Amount))
		assert.Equal(t, want[i].Type, got[i].Type)
		assert.Equal(t, want[i].Date, got[i].Date)
		assert.NotEqual(t, want[i].ID, got[i].ID)
	}
	assert.Equal(t, "919.75", target.Balance().String())
}

func TestImportTransactionsUseCase_MinimalHeader(t *testing.T) {
	s := newTestStore(t)
	out, err := NewImportTransactionsUseCase(s).Execute(context.Background(), ImportTransactionsInput{
		Reader: strings.NewReader("Type, Amount ,CATEGORY\nexpense,12.5,Comida\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Imported)

	txns := s.List(nil)
	require.Len(t, txns, 1)
	assert.Equal(t, "Comida", txns[0].CategoryName)
	assert.Equal(t, "12.5", txns[0].Amount.String())
	assert.Equal(t, entity.DateOnly(testNow), txns[0].Date)
}

func TestImportTransactionsUseCase_InvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "missing amount column", content: "type,category\nexpense,Comida\n"},
		{name: "unterminated quote", content: "type,amount,category\nexpense,\"10,Comida\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := importCSV(t, tt.content)
			assert.Nil(t, out)
			requireTransactionError(t, err, domainerror.ErrCodeInvalidImportFile)
			assert.ErrorIs(t, err, domainerror.ErrInvalidImportFile)
		})
	}
}

func TestImportTransactionsUseCase_ParseErrorsRejectWholeFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    domainerror.TransactionErrorCode
		prefix  string
	}{
		{
			name:    "bad amount",
			content: "type,amount,category\nexpense,10,Comida\nexpense,ten,Comida\n",
			code:    domainerror.ErrCodeInvalidTransactionAmount,
			prefix:  "line 3: ",
		},
		{
			name:    "bad date",
			content: "type,amount,category,date\nexpense,10,Comida,14/03/2025\n",
			code:    domainerror.ErrCodeInvalidTransactionDate,
			prefix:  "line 2: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			out, err := NewImportTransactionsUseCase(s).Execute(context.Background(), ImportTransactionsInput{
				Reader: strings.NewReader(tt.content),
			})
			assert.Nil(t, out)
			txnErr := requireTransactionError(t, err, tt.code)
			assert.True(t, strings.HasPrefix(txnErr.Message, tt.prefix), txnErr.Message)
			assert.Equal(t, 0, s.Count(nil))
		})
	}
}

func TestImportTransactionsUseCase_StopsAtRejectedRow(t *testing.T) {
	s := newTestStore(t)
	out, err := NewImportTransactionsUseCase(s).Execute(context.Background(), ImportTransactionsInput{
		Reader: strings.NewReader("type,amount,category\nexpense,0,Comida\nincome,100,Salario\n"),
	})

	txnErr := requireTransactionError(t, err, domainerror.ErrCodeInvalidTransactionAmount)
	assert.True(t, strings.HasPrefix(txnErr.Message, "line 2: "), txnErr.Message)
	assert.ErrorIs(t, err, domainerror.ErrInvalidTransactionAmount)

	require.NotNil(t, out)
	assert.Equal(t, 1, out.Imported)
	assert.Equal(t, 1, s.Count(nil))
}
