package textutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultTimeout bounds the time spent on a single match.
const DefaultTimeout = time.Second

// Matcher compiles delimited patterns and caches them by source text.
// It is safe for concurrent use.
type Matcher struct {
	timeout time.Duration
	cache   sync.Map // pattern -> *regexp2.Regexp
}

// NewMatcher returns a Matcher whose matches give up after timeout.
// A non-positive timeout selects DefaultTimeout.
func NewMatcher(timeout time.Duration) *Matcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Matcher{timeout: timeout}
}

// Timeout returns the per-match timeout.
func (m *Matcher) Timeout() time.Duration { return m.timeout }

// Compile parses and compiles a delimited pattern such as "/foo(bar)/i".
func (m *Matcher) Compile(pattern string) (*regexp2.Regexp, error) {
	if re, ok := m.cache.Load(pattern); ok {
		return re.(*regexp2.Regexp), nil
	}

	expr, opts, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}
	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Reason: err.Error()}
	}
	re.MatchTimeout = m.timeout

	actual, _ := m.cache.LoadOrStore(pattern, re)
	return actual.(*regexp2.Regexp), nil
}

// FirstCapture returns the text of the first capturing group of pattern in
// subject.
//
// The boolean is false when the pattern does not match or has no capturing
// group that took part in the match. An empty capture is reported as ("", true).
// Errors are returned only for invalid patterns and match timeouts.
//
// Groups are numbered by regexp2, which places named groups after all
// unnamed ones. In a pattern mixing both, group 1 is the first unnamed group
// even when a named group appears before it.
func (m *Matcher) FirstCapture(pattern, subject string) (string, bool, error) {
	re, err := m.Compile(pattern)
	if err != nil {
		return "", false, err
	}

	match, err := re.FindStringMatch(subject)
	if err != nil {
		return "", false, fmt.Errorf("match %q: %w", pattern, err)
	}
	if match == nil {
		return "", false, nil
	}

	groups := match.Groups()
	// Trailing groups that did not participate do not count, so group 1 is
	// only reported when it or a later group captured something.
	last := 0
	for i := 1; i < len(groups); i++ {
		if len(groups[i].Captures) > 0 {
			last = i
		}
	}
	if last == 0 {
		return "", false, nil
	}
	if len(groups[1].Captures) == 0 {
		return "", true, nil
	}
	return groups[1].String(), true, nil
}

var defaultMatcher = NewMatcher(DefaultTimeout)

// FirstCapture is Matcher.FirstCapture on a shared default Matcher.
func FirstCapture(pattern, subject string) (string, bool, error) {
	return defaultMatcher.FirstCapture(pattern, subject)
}
