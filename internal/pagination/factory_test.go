package pagination

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keysetArgs stands in for the structured args of a token type that does not exist yet.
type keysetArgs struct{ After string }

func (keysetArgs) isArgs() {}

func TestFactoryConstructFromRawString(t *testing.T) {
	f := NewFactory()

	tok, err := f.Construct(LimitOffset, RawArgs("limit=5&offset=25"))
	require.NoError(t, err)
	require.IsType(t, LimitOffsetToken{}, tok)
	assert.Equal(t, LimitOffset, tok.Type())
	assert.Equal(t, 5, tok.(LimitOffsetToken).Limit())
	assert.Equal(t, 25, tok.(LimitOffsetToken).Offset())
}

func TestFactoryConstructFromStructuredArgs(t *testing.T) {
	f := NewFactory()

	tok, err := f.LimitOffset(LimitOffsetArgs{Limit: 10, Offset: 40})
	require.NoError(t, err)
	assert.Equal(t, "limit=10&offset=40", tok.String())
}

func TestFactoryConstructRejectsNegativeStructuredArgs(t *testing.T) {
	f := NewFactory()

	for _, args := range []LimitOffsetArgs{{Limit: -1}, {Offset: -1}, {Limit: -3, Offset: -3}} {
		tok, err := f.Construct(LimitOffset, args)
		assert.Nil(t, tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "args %+v", args)
	}
}

func TestFactoryConstructErrors(t *testing.T) {
	f := NewFactory()

	tests := []struct {
		name    string
		typ     TokenType
		args    Args
		wantErr error
	}{
		{"unsupported type", TokenType(42), RawArgs(""), ErrUnsupportedTokenType},
		{"args for another type", LimitOffset, keysetArgs{After: "abc"}, ErrArgsTypeMismatch},
		{"nil args", LimitOffset, nil, ErrArgsTypeMismatch},
		{"malformed raw string", LimitOffset, RawArgs("limit"), ErrTokenFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := f.Construct(tt.typ, tt.args)
			assert.Nil(t, tok)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFactoryProbe(t *testing.T) {
	f := NewFactory()

	tok, err := f.Probe("limit=5&offset=25")
	require.NoError(t, err)
	assert.Equal(t, "limit=5&offset=25", tok.String())

	tok, err = f.Probe("  ")
	require.NoError(t, err)
	assert.Equal(t, LimitOffsetToken{}, tok)
}

func TestFactoryProbeAggregatesFailures(t *testing.T) {
	f := NewFactory()

	_, err := f.Probe("limit=10&offset=x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenFormat)

	var pe *ProbeError
	require.True(t, errors.As(err, &pe))
	require.Len(t, pe.Failures, 1)
	assert.Equal(t, LimitOffset, pe.Failures[0].Type)

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "limit=10&offset=x", fe.Token)
	assert.Contains(t, err.Error(), "limit_offset")
}

func TestFactoryProbeIsDeterministic(t *testing.T) {
	f := NewFactory()
	for i := 1; i <= 3; i++ {
		typ := TokenType(100 + i)
		f.register(typ, func(Args) (Token, error) {
			return nil, fmt.Errorf("%w: not a %s token", ErrTokenFormat, typ)
		})
	}

	_, first := f.Probe("garbage")
	require.Error(t, first)
	for i := 0; i < 20; i++ {
		_, again := f.Probe("garbage")
		require.Error(t, again)
		assert.Equal(t, first.Error(), again.Error())
	}
	assert.Equal(t, []TokenType{LimitOffset, 101, 102, 103}, f.Types())
}

func TestProbeErrorSummarisesLongFailureLists(t *testing.T) {
	f := NewFactory()
	for i := 1; i <= 5; i++ {
		typ := TokenType(200 + i)
		f.register(typ, func(Args) (Token, error) {
			return nil, errors.New("rejected")
		})
	}

	_, err := f.Probe("garbage")
	require.Error(t, err)

	var pe *ProbeError
	require.True(t, errors.As(err, &pe))
	assert.Len(t, pe.Failures, 6)
	assert.Contains(t, err.Error(), "and 2 more")
}

func TestFactoryProbeFirstSuccessWins(t *testing.T) {
	f := NewFactory()
	called := false
	f.register(TokenType(7), func(Args) (Token, error) {
		called = true
		return LimitOffsetToken{}, nil
	})

	_, err := f.Probe("limit=1&offset=1")
	require.NoError(t, err)
	assert.False(t, called)
}
