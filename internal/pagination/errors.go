package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors raised by the pagination core.
// All of them describe bad client or caller input and are never retried.
var (
	// ErrNegativePageSize indicates the declared page size is below zero.
	ErrNegativePageSize = errors.New("page size must be at least 0")

	// ErrTokenFormat indicates a page token matches no registered token type.
	ErrTokenFormat = errors.New("page token is not in a recognised format")

	// ErrUnsupportedTokenType indicates a token type tag that is not registered.
	ErrUnsupportedTokenType = errors.New("unsupported page token type")

	// ErrArgsTypeMismatch indicates structured token args that belong to another token type.
	ErrArgsTypeMismatch = errors.New("page token arguments do not match the token type")

	// ErrInconsistentPageSize indicates the token limit disagrees with the declared page size.
	ErrInconsistentPageSize = errors.New("page token is not consistent with page size; use the token from the previous response or set page token to empty")

	// ErrOffsetNotAligned indicates the token offset is not a multiple of its limit.
	ErrOffsetNotAligned = errors.New("offset must be a multiple of limit; use the token from the previous response or set page token to empty")

	// ErrInvalidToken indicates structured token fields violate the non-negative invariant.
	ErrInvalidToken = errors.New("limit and offset must be at least 0")
)

// maxReportedFailures bounds how many per-type failures a ProbeError spells out.
const maxReportedFailures = 4

// FormatError reports a wire string that does not match a token type's pattern.
type FormatError struct {
	Token   string // offending wire string
	Pattern string // expected pattern
	Reason  string // optional detail, e.g. integer overflow
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("token %q is not in correct format %q: %s", e.Token, e.Pattern, e.Reason)
	}
	return fmt.Sprintf("token %q is not in correct format %q", e.Token, e.Pattern)
}

// Is lets errors.Is(err, ErrTokenFormat) match.
func (e *FormatError) Is(target error) bool {
	return target == ErrTokenFormat
}

// ProbeFailure records why one token type rejected a wire string.
type ProbeFailure struct {
	Type TokenType
	Err  error
}

// ProbeError aggregates the failures of every token type tried in probe mode.
// Failures are kept in registry order so the message is stable across calls.
type ProbeError struct {
	Token    string
	Failures []ProbeFailure
}

// Error implements the error interface.
func (e *ProbeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "page token %q matches no known token type", e.Token)

	shown := e.Failures
	if len(shown) > maxReportedFailures {
		shown = shown[:maxReportedFailures]
	}
	for i, f := range shown {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %v", f.Type, f.Err)
	}
	if rest := len(e.Failures) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "; and %d more", rest)
	}
	return b.String()
}

// Is lets errors.Is(err, ErrTokenFormat) match.
func (e *ProbeError) Is(target error) bool {
	return target == ErrTokenFormat
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *ProbeError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}

// IsClientError reports whether err belongs to the pagination error taxonomy.
func IsClientError(err error) bool {
	switch {
	case errors.Is(err, ErrNegativePageSize),
		errors.Is(err, ErrTokenFormat),
		errors.Is(err, ErrUnsupportedTokenType),
		errors.Is(err, ErrArgsTypeMismatch),
		errors.Is(err, ErrInconsistentPageSize),
		errors.Is(err, ErrOffsetNotAligned),
		errors.Is(err, ErrInvalidToken):
		return true
	}
	return false
}
