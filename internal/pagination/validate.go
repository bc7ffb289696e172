package pagination

import "fmt"

// Validate checks a decoded token against the page size declared in the
// current request. Rules run in a fixed order and the first violation wins:
//
//  1. the token limit must equal the declared page size;
//  2. the token offset must be a multiple of the token limit.
//
// A zero limit is aligned only with a zero offset; it never reaches a modulo.
func Validate(tok Token, pageSize int) error {
	switch t := tok.(type) {
	case LimitOffsetToken:
		return validateLimitOffset(t, pageSize)
	case nil:
		return fmt.Errorf("%w: no token", ErrUnsupportedTokenType)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedTokenType, tok.Type())
	}
}

func validateLimitOffset(t LimitOffsetToken, pageSize int) error {
	if t.limit != pageSize {
		return fmt.Errorf("%w: token limit %d, page size %d", ErrInconsistentPageSize, t.limit, pageSize)
	}

	if t.limit == 0 {
		if t.offset != 0 {
			return fmt.Errorf("%w: offset %d with limit 0", ErrOffsetNotAligned, t.offset)
		}
		return nil
	}

	if t.offset%t.limit != 0 {
		return fmt.Errorf("%w: offset %d, limit %d", ErrOffsetNotAligned, t.offset, t.limit)
	}
	return nil
}
