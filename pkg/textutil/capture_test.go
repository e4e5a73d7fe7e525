package textutil

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestFirstCapture(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		subject  string
		expected string
		found    bool
	}{
		{name: "simple capture", pattern: "/foo(bar)/", subject: "foobar", expected: "bar", found: true},
		{name: "no match", pattern: "/foo(bar)/", subject: "nomatch", expected: "", found: false},
		{name: "empty capture is found", pattern: "/foo()/", subject: "foo", expected: "", found: true},
		{name: "no capturing group", pattern: "/foo/", subject: "foo", expected: "", found: false},
		{name: "optional group absent", pattern: "/(a)?b/", subject: "b", expected: "", found: false},
		{name: "optional group absent before later group", pattern: "/(a)?(b)/", subject: "b", expected: "", found: true},
		{name: "first of several groups", pattern: "/(\\d+)-(\\d+)/", subject: "10-20", expected: "10", found: true},
		{name: "case insensitive", pattern: "/FOO(bar)/i", subject: "xfooBAR", expected: "BAR", found: true},
		{name: "alternate delimiter", pattern: "#path/(\\w+)#", subject: "/path/user", expected: "user", found: true},
		{name: "escaped delimiter", pattern: `/a\/(b)/`, subject: "a/b", expected: "b", found: true},
		{name: "multiline anchors", pattern: "/^x(.)$/m", subject: "a\nxy\nb", expected: "y", found: true},
		{name: "dot matches newline", pattern: "/a(.)b/s", subject: "a\nb", expected: "\n", found: true},
		{name: "lookbehind", pattern: "/(?<=@)(\\w+)/", subject: "me@host", expected: "host", found: true},
		{name: "backreference", pattern: "/(\\w)\\1/", subject: "abccd", expected: "c", found: true},
		{name: "repeated group keeps last iteration", pattern: "/(?:(\\d),?)+/", subject: "1,2,3", expected: "3", found: true},
		{name: "unicode subject", pattern: "/é(.)/u", subject: "café!", expected: "!", found: true},
		{name: "named group alone", pattern: `/(?<id>\d+)/`, subject: "x42", expected: "42", found: true},
		{name: "unnamed group numbered before named", pattern: `/(?<word>[a-z]+)-(\d+)/`, subject: "ab-12", expected: "12", found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, found, err := FirstCapture(tt.pattern, tt.subject)
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFirstCapture_InvalidPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{name: "missing delimiters", pattern: "foo(bar)"},
		{name: "does not compile", pattern: "/foo(/"},
		{name: "unknown modifier", pattern: "/foo(bar)/z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, found, err := FirstCapture(tt.pattern, "foobar")
			assert.ErrorIs(t, err, ErrInvalidPattern)
			assert.False(t, found)
		})
	}
}

func TestMatcher_CompileCaches(t *testing.T) {
	m := NewMatcher(time.Second)

	first, err := m.Compile("/a(b)/")
	require.NoError(t, err)
	second, err := m.Compile("/a(b)/")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, time.Second, first.MatchTimeout)
}

func TestNewMatcher_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, NewMatcher(0).Timeout())
	assert.Equal(t, DefaultTimeout, NewMatcher(-time.Second).Timeout())
	assert.Equal(t, 5*time.Millisecond, NewMatcher(5*time.Millisecond).Timeout())
}

func TestMatcher_Timeout(t *testing.T) {
	m := NewMatcher(10 * time.Millisecond)

	_, found, err := m.FirstCapture("/^(a+)+$/", strings.Repeat("a", 40)+"!")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidPattern)
	assert.False(t, found)
}

func TestMatcher_ConcurrentUse(t *testing.T) {
	m := NewMatcher(time.Second)

	var g errgroup.Group
	results := make([]string, 32)
	for i := range results {
		g.Go(func() error {
			got, _, err := m.FirstCapture("/id=(\\d+)/", "user id=42")
			results[i] = got
			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, got := range results {
		assert.Equal(t, "42", got)
	}
}
