// Package suppression implements suppression files: lists of conditions
// under which violations are dropped, plus an audit of entries that never
// dropped anything.
package suppression

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/arthur-debert/ruleset/pkg/audit"
	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/arthur-debert/ruleset/pkg/pattern"
	"github.com/dlclark/regexp2"
)

// Element is a single <suppress> entry. An event is suppressed when every
// condition that is set matches it.
type Element struct {
	files   *regexp2.Regexp
	checks  *regexp2.Regexp
	message *regexp2.Regexp
	id      string
	lines   ranges
	columns ranges

	used atomic.Bool
}

// Spec holds the raw attribute values of an element.
type Spec struct {
	Files   string
	Checks  string
	Message string
	ID      string
	Lines   string
	Columns string
}

// NewElement compiles spec. At least one of checks, message or id must be
// set, otherwise the entry would suppress every violation in its files.
func NewElement(spec Spec) (*Element, error) {
	if spec.Checks == "" && spec.Message == "" && spec.ID == "" {
		return nil, errors.New(errors.ErrInvalidInput, "one of 'checks', 'message' or 'id' must be specified")
	}

	e := &Element{id: spec.ID}
	var err error
	for _, c := range []struct {
		dst  **regexp2.Regexp
		expr string
	}{
		{&e.files, spec.Files},
		{&e.checks, spec.Checks},
		{&e.message, spec.Message},
	} {
		if c.expr == "" {
			continue
		}
		if *c.dst, err = pattern.Compile(c.expr); err != nil {
			return nil, err
		}
	}
	if e.lines, err = parseRanges(spec.Lines); err != nil {
		return nil, err
	}
	if e.columns, err = parseRanges(spec.Columns); err != nil {
		return nil, err
	}
	return e, nil
}

// Suppresses reports whether ev matches every condition of the element, and
// marks the element used when it does.
func (e *Element) Suppresses(ev audit.Event) bool {
	if !e.matches(ev) {
		return false
	}
	e.used.Store(true)
	return true
}

// Accept is the filter view of Suppresses.
func (e *Element) Accept(ev audit.Event) bool {
	return !e.Suppresses(ev)
}

func (e *Element) matches(ev audit.Event) bool {
	if e.files != nil && !pattern.Find(e.files, ev.FileName) {
		return false
	}
	if e.checks != nil && !pattern.Find(e.checks, ev.Source) {
		return false
	}
	if e.id != "" && e.id != ev.ModuleID {
		return false
	}
	if e.message != nil && !pattern.Find(e.message, ev.Message) {
		return false
	}
	if !e.lines.contains(ev.Line) || !e.columns.contains(ev.Column) {
		return false
	}
	return true
}

// Used reports whether the element ever suppressed an event.
func (e *Element) Used() bool {
	return e.used.Load()
}

// String describes the element by its set attributes, in a fixed order.
func (e *Element) String() string {
	var parts []string
	add := func(k, v string) {
		if v != "" {
			parts = append(parts, fmt.Sprintf("%s='%s'", k, v))
		}
	}
	add("files", pattern.String(e.files))
	add("checks", pattern.String(e.checks))
	add("message", pattern.String(e.message))
	add("id", e.id)
	add("lines", e.lines.String())
	add("columns", e.columns.String())
	return "suppress[" + strings.Join(parts, ", ") + "]"
}

// ranges is a set of inclusive integer intervals. Empty means "any".
type ranges []interval

type interval struct{ lo, hi int }

func parseRanges(s string) (ranges, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out ranges
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		lo, hi, isRange := strings.Cut(field, "-")
		a, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid range %q", field)
		}
		b := a
		if isRange {
			if b, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid range %q", field)
			}
		}
		if b < a {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid range %q: end before start", field)
		}
		out = append(out, interval{a, b})
	}
	return out, nil
}

func (r ranges) contains(n int) bool {
	if len(r) == 0 {
		return true
	}
	for _, iv := range r {
		if n >= iv.lo && n <= iv.hi {
			return true
		}
	}
	return false
}

func (r ranges) String() string {
	parts := make([]string, len(r))
	for i, iv := range r {
		if iv.lo == iv.hi {
			parts[i] = strconv.Itoa(iv.lo)
		} else {
			parts[i] = fmt.Sprintf("%d-%d", iv.lo, iv.hi)
		}
	}
	return strings.Join(parts, ",")
}
