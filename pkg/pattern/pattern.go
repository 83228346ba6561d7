// Package pattern compiles the regular expressions users put in module
// properties and suppression files. The syntax is the backtracking dialect
// those files are written in (lookarounds, backreferences), not RE2.
package pattern

import (
	"time"

	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/dlclark/regexp2"
)

// MatchTimeout bounds a single match so a pathological pattern cannot stall
// a run.
const MatchTimeout = 2 * time.Second

// Compile compiles expr. An invalid expression yields ErrPatternInvalid.
func Compile(expr string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid pattern %q", expr).
			WithDetail("pattern", expr)
	}
	re.MatchTimeout = MatchTimeout
	return re, nil
}

// Find reports whether re matches anywhere in s. A nil pattern never
// matches, and neither does a match that times out.
func Find(re *regexp2.Regexp, s string) bool {
	if re == nil {
		return false
	}
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// String returns the source of re, or "" for nil.
func String(re *regexp2.Regexp) string {
	if re == nil {
		return ""
	}
	return re.String()
}
