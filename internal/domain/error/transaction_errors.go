// Package error defines domain-specific errors for the FinTrack application.
package error

import (
	"errors"
	"fmt"
)

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the store.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the transaction amount is not positive.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrMissingCategory is returned when a transaction has no category name.
	ErrMissingCategory = errors.New("category is required")

	// ErrNotesTooLong is returned when the transaction note exceeds the maximum length.
	ErrNotesTooLong = errors.New("note too long")

	// ErrInvalidTransactionDate is returned when a date cannot be parsed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrNoFieldsToUpdate is returned when an update carries no fields.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrInvalidTransactionID is returned when a transaction id cannot be parsed.
	ErrInvalidTransactionID = errors.New("invalid transaction id")

	// ErrInvalidImportFile is returned when a CSV import has no usable header.
	ErrInvalidImportFile = errors.New("invalid import file")
)

// Fields reported by ValidationError.
const (
	FieldType     = "type"
	FieldAmount   = "amount"
	FieldCategory = "category"
	FieldNote     = "note"
	FieldDate     = "date"
)

// ValidationError reports input rejected by the store.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(field, reason string, err error) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: reason,
		Err:    err,
	}
}

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010004"
	ErrCodeMissingCategory          TransactionErrorCode = "TXN-010006"
	ErrCodeNotesTooLong             TransactionErrorCode = "TXN-010009"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010010"
	ErrCodeInvalidTransactionID     TransactionErrorCode = "TXN-010011"
	ErrCodeInvalidImportFile        TransactionErrorCode = "TXN-010012"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeForValidationField maps a validation field to its error code.
func CodeForValidationField(field string) TransactionErrorCode {
	switch field {
	case FieldType:
		return ErrCodeInvalidTransactionType
	case FieldAmount:
		return ErrCodeInvalidTransactionAmount
	case FieldCategory:
		return ErrCodeMissingCategory
	case FieldNote:
		return ErrCodeNotesTooLong
	case FieldDate:
		return ErrCodeInvalidTransactionDate
	default:
		return ErrCodeMissingTransactionFields
	}
}
