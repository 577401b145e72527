package transaction

import (
	"errors"
	"fmt"

	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// mapStoreError converts store errors into coded transaction errors.
// Unknown errors are wrapped with the given action.
func mapStoreError(action string, err error) error {
	var validationErr *domainerror.ValidationError
	if errors.As(err, &validationErr) {
		return domainerror.NewTransactionError(
			domainerror.CodeForValidationField(validationErr.Field),
			validationErr.Error(),
			validationErr,
		)
	}

	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	return fmt.Errorf("failed to %s: %w", action, err)
}
