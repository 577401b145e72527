package error

import (
	"errors"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError(FieldAmount, "must be greater than zero", ErrInvalidTransactionAmount)

	if err.Error() != "invalid amount: must be greater than zero" {
		t.Errorf("unexpected message %q", err.Error())
	}

	if !errors.Is(err, ErrInvalidTransactionAmount) {
		t.Error("expected validation error to unwrap to ErrInvalidTransactionAmount")
	}
}

func TestTransactionError_WrapsValidationError(t *testing.T) {
	inner := NewValidationError(FieldCategory, "is required", ErrMissingCategory)
	err := NewTransactionError(ErrCodeMissingCategory, inner.Error(), inner)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatal("expected errors.As to find the ValidationError")
	}
	if validationErr.Field != FieldCategory {
		t.Errorf("expected field %q, got %q", FieldCategory, validationErr.Field)
	}
	if !errors.Is(err, ErrMissingCategory) {
		t.Error("expected chain to include ErrMissingCategory")
	}
}

func TestCodeForValidationField(t *testing.T) {
	tests := []struct {
		field    string
		expected TransactionErrorCode
	}{
		{FieldType, ErrCodeInvalidTransactionType},
		{FieldAmount, ErrCodeInvalidTransactionAmount},
		{FieldCategory, ErrCodeMissingCategory},
		{FieldNote, ErrCodeNotesTooLong},
		{FieldDate, ErrCodeInvalidTransactionDate},
		{"unknown", ErrCodeMissingTransactionFields},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := CodeForValidationField(tt.field); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
