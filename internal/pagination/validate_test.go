package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustToken(t *testing.T, limit, offset int) LimitOffsetToken {
	t.Helper()
	tok, err := NewLimitOffsetToken(limit, offset)
	require.NoError(t, err)
	return tok
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		limit, offset int
		pageSize      int
		wantErr       error
	}{
		{"limit differs from page size", 2, 1, 1, ErrInconsistentPageSize},
		{"smaller page size", 4, 10, 5, ErrInconsistentPageSize},
		{"larger page size", 2, 20, 10, ErrInconsistentPageSize},
		{"offset not aligned", 2, 3, 2, ErrOffsetNotAligned},
		{"offset not aligned large", 10, 21, 10, ErrOffsetNotAligned},
		{"offset not aligned odd", 5, 9, 5, ErrOffsetNotAligned},
		{"first page with limit", 1, 0, 1, nil},
		{"aligned", 5, 25, 5, nil},
		{"aligned deep", 10, 300, 10, nil},
		{"aligned two pages", 25, 50, 25, nil},
		{"zero limit zero offset", 0, 0, 0, nil},
		{"zero limit non-zero offset", 0, 5, 0, ErrOffsetNotAligned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(mustToken(t, tt.limit, tt.offset), tt.pageSize)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateChecksSizeBeforeAlignment(t *testing.T) {
	// Both rules are violated; the size rule is reported.
	err := Validate(mustToken(t, 2, 3), 4)
	assert.ErrorIs(t, err, ErrInconsistentPageSize)
	assert.NotErrorIs(t, err, ErrOffsetNotAligned)
}

func TestValidateRejectsMissingToken(t *testing.T) {
	assert.ErrorIs(t, Validate(nil, 5), ErrUnsupportedTokenType)
}
