package pagination

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// limitOffsetFormat is the wire template of a LimitOffset token.
const limitOffsetFormat = "limit=%d&offset=%d"

// limitOffsetPattern is derived from limitOffsetFormat so the two cannot drift apart.
var limitOffsetPattern = patternFromFormat(limitOffsetFormat)

// patternFromFormat turns a printf template with %d verbs into an anchored
// regexp with one capture group per verb.
func patternFromFormat(format string) *regexp.Regexp {
	parts := strings.Split(format, "%d")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile("^" + strings.Join(parts, "([0-9]+)") + "$")
}

// LimitOffsetPattern returns the regular expression a non-empty LimitOffset token must match.
func LimitOffsetPattern() string {
	return limitOffsetPattern.String()
}

// isBlank reports whether a wire string means "first page".
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// EncodeLimitOffset returns the canonical wire form of t.
func EncodeLimitOffset(t LimitOffsetToken) string {
	return fmt.Sprintf(limitOffsetFormat, t.limit, t.offset)
}

// DecodeLimitOffset parses a wire string into a LimitOffset token.
// Empty or whitespace-only input is the first page and yields limit=0, offset=0.
func DecodeLimitOffset(s string) (LimitOffsetToken, error) {
	if isBlank(s) {
		return LimitOffsetToken{}, nil
	}

	m := limitOffsetPattern.FindStringSubmatch(s)
	if m == nil {
		return LimitOffsetToken{}, &FormatError{Token: s, Pattern: LimitOffsetPattern()}
	}

	limit, err := strconv.Atoi(m[1])
	if err != nil {
		return LimitOffsetToken{}, &FormatError{Token: s, Pattern: LimitOffsetPattern(), Reason: "limit out of range"}
	}
	offset, err := strconv.Atoi(m[2])
	if err != nil {
		return LimitOffsetToken{}, &FormatError{Token: s, Pattern: LimitOffsetPattern(), Reason: "offset out of range"}
	}

	return LimitOffsetToken{limit: limit, offset: offset}, nil
}
