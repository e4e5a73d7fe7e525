package textutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// ErrInvalidPattern is the sentinel error wrapped by PatternError.
var ErrInvalidPattern = errors.New("invalid pattern")

// PatternError is returned when a delimited pattern cannot be parsed or compiled.
type PatternError struct {
	Pattern string
	Reason  string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Reason)
}

// Unwrap returns ErrInvalidPattern so callers can use errors.Is.
func (e *PatternError) Unwrap() error { return ErrInvalidPattern }

var closingDelimiters = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// parsePattern splits a delimited pattern such as "/foo(bar)/i" into the
// expression and its compile options.
func parsePattern(pattern string) (string, regexp2.RegexOptions, error) {
	p := strings.TrimLeft(pattern, " \t\r\n\v\f")
	if p == "" {
		return "", 0, &PatternError{Pattern: pattern, Reason: "empty pattern"}
	}

	open := p[0]
	if isAlnum(open) || open == '\\' {
		return "", 0, &PatternError{Pattern: pattern, Reason: "delimiter must not be alphanumeric or backslash"}
	}
	end := findClosingDelimiter(p, open)
	if end < 0 {
		return "", 0, &PatternError{Pattern: pattern, Reason: "no ending delimiter"}
	}

	var opts regexp2.RegexOptions
	for _, c := range []byte(p[end+1:]) {
		switch c {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'x':
			opts |= regexp2.IgnorePatternWhitespace
		case 'u', ' ', '\n', '\r':
			// input is already UTF-8
		default:
			return "", 0, &PatternError{Pattern: pattern, Reason: fmt.Sprintf("unknown modifier %q", c)}
		}
	}
	return p[1:end], opts, nil
}

// findClosingDelimiter returns the index of the delimiter that closes the
// expression opened by p[0], or -1. Bracket delimiters may nest.
func findClosingDelimiter(p string, open byte) int {
	closer, bracketed := closingDelimiters[open]
	if !bracketed {
		closer = open
	}
	depth := 0
	for i := 1; i < len(p); i++ {
		switch c := p[i]; {
		case c == '\\':
			i++
		case c == closer:
			if depth == 0 {
				return i
			}
			depth--
		case bracketed && c == open:
			depth++
		}
	}
	return -1
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
