// Package pagination implements opaque page tokens for offset-paginated list endpoints.
//
// A page token is handed to clients as a plain string. The package decodes
// such strings into typed token values, mints fresh tokens for "next page"
// cursors, checks that a token is consistent with the page size a client
// declares, and offers a Gate that enforces all of this before a request
// reaches its handler.
package pagination

import "fmt"

// TokenType identifies a pagination token variant.
type TokenType int

const (
	// LimitOffset is a token carrying a SQL style limit and offset.
	LimitOffset TokenType = iota
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case LimitOffset:
		return "limit_offset"
	default:
		return fmt.Sprintf("token_type_%d", int(t))
	}
}

// Token is a decoded page token. The set of implementations is closed to this
// package; use a type switch over the concrete variants to inspect one.
type Token interface {
	// Type returns the variant tag.
	Type() TokenType
	// String returns the canonical wire form.
	String() string

	isToken()
}

// LimitOffsetToken is the limit/offset token variant. The zero value is the
// first-page token.
type LimitOffsetToken struct {
	limit  int
	offset int
}

// NewLimitOffsetToken returns a token for the given limit and offset.
// Both must be at least 0.
func NewLimitOffsetToken(limit, offset int) (LimitOffsetToken, error) {
	if limit < 0 {
		return LimitOffsetToken{}, fmt.Errorf("%w: limit is %d", ErrInvalidToken, limit)
	}
	if offset < 0 {
		return LimitOffsetToken{}, fmt.Errorf("%w: offset is %d", ErrInvalidToken, offset)
	}
	return LimitOffsetToken{limit: limit, offset: offset}, nil
}

// Limit returns the page size embedded in the token.
func (t LimitOffsetToken) Limit() int { return t.limit }

// Offset returns the starting position embedded in the token.
func (t LimitOffsetToken) Offset() int { return t.offset }

// Type implements Token.
func (t LimitOffsetToken) Type() TokenType { return LimitOffset }

// String implements Token.
func (t LimitOffsetToken) String() string { return EncodeLimitOffset(t) }

// Next returns the token for the page that follows this one.
func (t LimitOffsetToken) Next() LimitOffsetToken {
	return LimitOffsetToken{limit: t.limit, offset: t.offset + t.limit}
}

func (LimitOffsetToken) isToken() {}
