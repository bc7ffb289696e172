package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotflik/dotflik/internal/pagination"
	"github.com/dotflik/dotflik/internal/repository"
)

func TestTranslateRepoError(t *testing.T) {
	assert.NoError(t, TranslateRepoError("op", nil))

	tests := []struct {
		in   error
		want *Error
	}{
		{repository.ErrNotFound, ErrNotFound},
		{fmt.Errorf("%w: dup", repository.ErrDuplicateKey), ErrDuplicate},
		{repository.ErrForeignKeyViolation, ErrDependencyExists},
		{repository.ErrDataTooLong, ErrDataTooLong},
		{errors.New("connection reset"), ErrDatabaseError},
	}
	for _, tt := range tests {
		err := TranslateRepoError("MovieService.GetByID", tt.in)
		assert.ErrorIs(t, err, tt.want)
		assert.Contains(t, err.Error(), "MovieService.GetByID")
	}
}

func TestTranslatePageError(t *testing.T) {
	assert.NoError(t, TranslatePageError("op", nil))

	other := errors.New("boom")
	assert.Same(t, other, TranslatePageError("op", other))

	tests := []struct {
		in    error
		field string
	}{
		{pagination.ErrNegativePageSize, "page_size"},
		{pagination.ErrInconsistentPageSize, "page_size"},
		{pagination.ErrOffsetNotAligned, "page_token"},
		{&pagination.FormatError{Token: "x", Pattern: pagination.LimitOffsetPattern()}, "page_token"},
	}
	for _, tt := range tests {
		err := TranslatePageError("op", tt.in)
		assert.ErrorIs(t, err, ErrPagination)
		assert.ErrorIs(t, err, tt.in)

		var appErr *Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, tt.field, appErr.Field)
		assert.Equal(t, tt.in.Error(), appErr.Message)
	}
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "pagination", CodePagination.String())
	assert.Equal(t, "not_found", CodeNotFound.String())
	assert.Equal(t, "unknown_code_99", Code(99).String())
}
