package pagination

import (
	"context"
	"fmt"
)

// PageRequest is implemented by requests that carry a page size and a page
// token. The getter names follow protobuf generated code so RPC request
// messages satisfy it without adapters.
type PageRequest interface {
	GetPageSize() int32
	GetPageToken() string
}

// Handler is the downstream request handler a Gate forwards to.
type Handler func(ctx context.Context, req any) (any, error)

// Gate rejects paginated requests whose page size or page token are unusable,
// before any data is fetched. It holds no per-request state.
type Gate struct {
	factory *Factory
}

// NewGate returns a gate decoding tokens with f. A nil f uses NewFactory().
func NewGate(f *Factory) *Gate {
	if f == nil {
		f = NewFactory()
	}
	return &Gate{factory: f}
}

// Check runs the gate's rules against req. Requests that do not implement
// PageRequest and first-page requests pass with a nil token.
func (g *Gate) Check(req any) (Token, error) {
	pr, ok := req.(PageRequest)
	if !ok {
		return nil, nil
	}
	return g.CheckPage(int(pr.GetPageSize()), pr.GetPageToken())
}

// CheckPage runs the gate's rules against an already extracted page size and token.
func (g *Gate) CheckPage(pageSize int, pageToken string) (Token, error) {
	if pageSize < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativePageSize, pageSize)
	}

	if isBlank(pageToken) {
		return nil, nil
	}

	tok, err := g.factory.Probe(pageToken)
	if err != nil {
		return nil, err
	}

	if err := Validate(tok, pageSize); err != nil {
		return nil, err
	}
	return tok, nil
}

// Intercept checks req and, when it passes, forwards it unchanged to next.
// The handler's response and error are returned as they are.
func (g *Gate) Intercept(ctx context.Context, req any, next Handler) (any, error) {
	if _, err := g.Check(req); err != nil {
		return nil, err
	}
	return next(ctx, req)
}
