package apperrors

import (
	"errors"
	"fmt"

	"github.com/dotflik/dotflik/internal/pagination"
	"github.com/dotflik/dotflik/internal/repository"
)

// TranslateRepoError converts repository errors to domain errors with operation context.
// Returns nil if err is nil. The operation name is prefixed to provide call-site context.
func TranslateRepoError(op string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, repository.ErrDuplicateKey):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	case errors.Is(err, repository.ErrForeignKeyViolation):
		return fmt.Errorf("%s: %w", op, ErrDependencyExists)
	case errors.Is(err, repository.ErrDataTooLong):
		return fmt.Errorf("%s: %w", op, ErrDataTooLong)
	default:
		return fmt.Errorf("%s: %w: %v", op, ErrDatabaseError, err)
	}
}

// TranslatePageError converts a rejected page size or token into a
// CodePagination error. The original error stays reachable through
// errors.Is so transports can report the exact rule that failed.
// Errors outside the pagination taxonomy are returned unchanged.
func TranslatePageError(op string, err error) error {
	if err == nil {
		return nil
	}
	if !pagination.IsClientError(err) {
		return err
	}

	field := "page_token"
	if errors.Is(err, pagination.ErrNegativePageSize) || errors.Is(err, pagination.ErrInconsistentPageSize) {
		field = "page_size"
	}

	return fmt.Errorf("%s: %w", op, &Error{
		Code:    CodePagination,
		Message: err.Error(),
		Field:   field,
		Err:     err,
	})
}
