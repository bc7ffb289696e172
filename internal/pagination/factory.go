package pagination

import "fmt"

// ConstructFunc builds a token of one type from args.
type ConstructFunc func(args Args) (Token, error)

// Factory constructs tokens by type tag. It holds a fixed registry built by
// NewFactory and is safe for concurrent use.
type Factory struct {
	order        []TokenType
	constructors map[TokenType]ConstructFunc
}

// NewFactory returns a factory with every built-in token type registered.
func NewFactory() *Factory {
	f := &Factory{constructors: make(map[TokenType]ConstructFunc)}
	f.register(LimitOffset, constructLimitOffset)
	return f
}

// register adds a token type. Probe tries types in registration order.
func (f *Factory) register(t TokenType, fn ConstructFunc) {
	if _, ok := f.constructors[t]; !ok {
		f.order = append(f.order, t)
	}
	f.constructors[t] = fn
}

// Types returns the registered token types in probe order.
func (f *Factory) Types() []TokenType {
	out := make([]TokenType, len(f.order))
	copy(out, f.order)
	return out
}

// Construct builds a token of type t from args.
func (f *Factory) Construct(t TokenType, args Args) (Token, error) {
	fn, ok := f.constructors[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTokenType, t)
	}
	return fn(args)
}

// Probe decodes a wire string whose token type is not known in advance.
// Each registered type is tried in order and the first success wins. When
// none accepts the string a *ProbeError lists every type's failure.
func (f *Factory) Probe(raw string) (Token, error) {
	failures := make([]ProbeFailure, 0, len(f.order))
	for _, t := range f.order {
		tok, err := f.Construct(t, RawArgs(raw))
		if err == nil {
			return tok, nil
		}
		failures = append(failures, ProbeFailure{Type: t, Err: err})
	}
	return nil, &ProbeError{Token: raw, Failures: failures}
}

// LimitOffset constructs a LimitOffset token and returns it as its concrete type.
func (f *Factory) LimitOffset(args Args) (LimitOffsetToken, error) {
	tok, err := f.Construct(LimitOffset, args)
	if err != nil {
		return LimitOffsetToken{}, err
	}
	lo, ok := tok.(LimitOffsetToken)
	if !ok {
		return LimitOffsetToken{}, fmt.Errorf("%w: got %s token", ErrArgsTypeMismatch, tok.Type())
	}
	return lo, nil
}

func constructLimitOffset(args Args) (Token, error) {
	var (
		tok LimitOffsetToken
		err error
	)
	switch a := args.(type) {
	case RawArgs:
		tok, err = DecodeLimitOffset(string(a))
	case LimitOffsetArgs:
		tok, err = NewLimitOffsetToken(a.Limit, a.Offset)
	case nil:
		return nil, fmt.Errorf("%w: no arguments for %s", ErrArgsTypeMismatch, LimitOffset)
	default:
		return nil, fmt.Errorf("%w: %T cannot build a %s token", ErrArgsTypeMismatch, args, LimitOffset)
	}
	if err != nil {
		return nil, err
	}
	return tok, nil
}
