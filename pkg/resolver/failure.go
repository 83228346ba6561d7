package resolver

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Strategy is one of the four lookup tiers.
type Strategy int

const (
	StrategyDirect Strategy = iota
	StrategySuffixed
	StrategyPrefixed
	StrategySuffixedPrefixed
)

// Strategies lists every strategy in the order they run.
var Strategies = []Strategy{StrategyDirect, StrategySuffixed, StrategyPrefixed, StrategySuffixedPrefixed}

func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategySuffixed:
		return "suffixed"
	case StrategyPrefixed:
		return "prefixed"
	case StrategySuffixedPrefixed:
		return "suffixed-prefixed"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Attempt is one identifier that failed to construct.
type Attempt struct {
	Strategy Strategy
	ID       string
}

// Failure describes a name that no strategy could construct.
type Failure struct {
	Requested string
	Suffixed  string
	Attempted []Attempt
}

// IDs returns the attempted identifiers in attempt order.
func (f *Failure) IDs() []string {
	ids := make([]string, len(f.Attempted))
	for i, a := range f.Attempted {
		ids[i] = a.ID
	}
	return ids
}

// ByStrategy groups the attempted identifiers by strategy. Order within a
// group is attempt order.
func (f *Failure) ByStrategy() map[Strategy][]string {
	out := make(map[Strategy][]string)
	for _, a := range f.Attempted {
		out[a.Strategy] = append(out[a.Strategy], a.ID)
	}
	return out
}

func (f *Failure) Error() string {
	if len(f.Attempted) == 0 {
		return fmt.Sprintf("unable to instantiate '%s' module, no alias or namespace prefix produced a candidate", f.Requested)
	}
	return fmt.Sprintf("unable to instantiate '%s' module, it is also not possible to instantiate it as %s",
		f.Requested, Describe(f))
}

// Describe joins every attempted identifier with ", ". Nothing is dropped or
// merged; a prefix that yields the same identifier twice shows up twice.
func Describe(f *Failure) string {
	return strings.Join(f.IDs(), ", ")
}

// AsFailure extracts the *Failure from an error returned by Resolve.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if stderrors.As(err, &f) {
		return f, true
	}
	return nil, false
}
