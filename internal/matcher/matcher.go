package matcher

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/haytac/emoji-filter/internal/dataset"
)

// InvalidPatternError reports a query that is not a valid regular expression.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }

// IsInvalidPattern reports whether err is, or wraps, an InvalidPatternError.
func IsInvalidPattern(err error) bool {
	var target *InvalidPatternError
	return errors.As(err, &target)
}

// Config controls how a query is compiled.
type Config struct {
	// IgnoreCase folds case unless the pattern already sets its own flags.
	IgnoreCase bool
}

// RegexpMatcher selects records whose aliases or tags match a pattern.
type RegexpMatcher struct {
	re *regexp.Regexp
}

// Compile builds the pattern verbatim, prefixing (?i) when cfg.IgnoreCase is set.
func Compile(src string, cfg Config) (*regexp.Regexp, error) {
	expr := src
	if cfg.IgnoreCase {
		expr = "(?i)" + src
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: src, Err: err}
	}
	return re, nil
}

// New compiles src and wraps it in a RegexpMatcher.
func New(src string, cfg Config) (*RegexpMatcher, error) {
	re, err := Compile(src, cfg)
	if err != nil {
		return nil, err
	}
	return &RegexpMatcher{re: re}, nil
}

// Match implements interfaces.Matcher.
func (m *RegexpMatcher) Match(e dataset.Emoji) bool {
	return Matches(m.re, e)
}

// Matches reports whether re finds a match in any alias or tag of e.
// The name and the glyph are never consulted on their own.
func Matches(re *regexp.Regexp, e dataset.Emoji) bool {
	return Any(e.Aliases, re.MatchString) || Any(e.Tags, re.MatchString)
}

// Any reports whether some element of seq satisfies pred.
func Any[T any](seq []T, pred func(T) bool) bool {
	for _, v := range seq {
		if pred(v) {
			return true
		}
	}
	return false
}
