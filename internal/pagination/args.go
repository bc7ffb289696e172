package pagination

// Args are the inputs to Factory.Construct. Exactly one of two shapes is
// used: RawArgs carries a wire string of any type, while a structured args
// value such as LimitOffsetArgs carries fields for one specific type.
type Args interface {
	isArgs()
}

// RawArgs is a wire string still to be decoded.
type RawArgs string

// LimitOffsetArgs are the structured fields of a LimitOffset token.
type LimitOffsetArgs struct {
	Limit  int
	Offset int
}

func (RawArgs) isArgs()         {}
func (LimitOffsetArgs) isArgs() {}
