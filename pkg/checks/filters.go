package checks

import (
	"github.com/arthur-debert/ruleset/pkg/audit"
)

// SeverityMatchFilter accepts or rejects events by severity. The severity
// property names the severity to match.
type SeverityMatchFilter struct{ Base }

func (f *SeverityMatchFilter) Init() error {
	return f.defaults("acceptOnMatch", "true")
}

func (f *SeverityMatchFilter) Accept(ev audit.Event) bool {
	acceptOnMatch, err := f.Bool("acceptOnMatch")
	if err != nil {
		acceptOnMatch = true
	}
	match := ev.Severity == f.Severity()
	return match == acceptOnMatch
}

// SuppressionCommentFilter drops events between an off comment and the
// next on comment.
type SuppressionCommentFilter struct{ Base }

func (f *SuppressionCommentFilter) Init() error {
	return f.defaults(
		"offCommentFormat", "RULESET:OFF",
		"onCommentFormat", "RULESET:ON",
		"checkFormat", ".*",
		"messageFormat", "",
		"idFormat", "",
	)
}

// SuppressWithNearbyCommentFilter drops events on lines near a matching
// comment.
type SuppressWithNearbyCommentFilter struct{ Base }

func (f *SuppressWithNearbyCommentFilter) Init() error {
	return f.defaults(
		"commentFormat", `SUPPRESS RULESET (\w+)`,
		"checkFormat", ".*",
		"messageFormat", "",
		"influenceFormat", "0",
	)
}
