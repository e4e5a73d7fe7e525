package textutil

import (
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name         string
		pattern      string
		expectedExpr string
		expectedOpts regexp2.RegexOptions
	}{
		{name: "slash delimiters", pattern: "/foo(bar)/", expectedExpr: "foo(bar)"},
		{name: "hash delimiters", pattern: "#a/b#", expectedExpr: "a/b"},
		{name: "brace delimiters", pattern: "{a{2}(b)}", expectedExpr: "a{2}(b)"},
		{name: "paren delimiters", pattern: "((x)y)", expectedExpr: "(x)y"},
		{name: "escaped delimiter", pattern: `/a\/(b)/`, expectedExpr: `a\/(b)`},
		{name: "leading whitespace", pattern: "  /x/", expectedExpr: "x"},
		{name: "ignore case", pattern: "/x/i", expectedExpr: "x", expectedOpts: regexp2.IgnoreCase},
		{
			name:         "combined modifiers",
			pattern:      "/x/msxu\n",
			expectedExpr: "x",
			expectedOpts: regexp2.Multiline | regexp2.Singleline | regexp2.IgnorePatternWhitespace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, opts, err := parsePattern(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedExpr, expr)
			assert.Equal(t, tt.expectedOpts, opts)
		})
	}
}

func TestParsePattern_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		reason  string
	}{
		{name: "empty", pattern: "", reason: "empty pattern"},
		{name: "whitespace only", pattern: "   ", reason: "empty pattern"},
		{name: "alphanumeric delimiter", pattern: "foo(bar)", reason: "delimiter must not be alphanumeric or backslash"},
		{name: "backslash delimiter", pattern: `\x\`, reason: "delimiter must not be alphanumeric or backslash"},
		{name: "missing end delimiter", pattern: "/foo(bar)", reason: "no ending delimiter"},
		{name: "unbalanced brackets", pattern: "[a[b]", reason: "no ending delimiter"},
		{name: "unknown modifier", pattern: "/foo/q", reason: `unknown modifier 'q'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parsePattern(tt.pattern)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPattern)

			var patternErr *PatternError
			require.ErrorAs(t, err, &patternErr)
			assert.Equal(t, tt.pattern, patternErr.Pattern)
			assert.Equal(t, tt.reason, patternErr.Reason)
		})
	}
}

func TestPatternError_Message(t *testing.T) {
	err := &PatternError{Pattern: "/x", Reason: "no ending delimiter"}
	assert.Equal(t, `invalid pattern "/x": no ending delimiter`, err.Error())
}
