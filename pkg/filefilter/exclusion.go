// Package filefilter decides, before any module runs, which files a run
// skips.
package filefilter

import (
	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/arthur-debert/ruleset/pkg/pattern"
	"github.com/dlclark/regexp2"
)

// Event carries the path of a file about to be processed.
type Event struct {
	FileName string
}

// ExclusionFilter skips files whose path matches a pattern anywhere. The
// zero value has no pattern and excludes nothing.
type ExclusionFilter struct {
	fileName *regexp2.Regexp
}

// New returns a filter for pattern. An empty pattern excludes nothing.
func New(expr string) (*ExclusionFilter, error) {
	f := &ExclusionFilter{}
	if err := f.SetFileName(expr); err != nil {
		return nil, err
	}
	return f, nil
}

// SetFileName replaces the pattern. An empty expression clears it.
func (f *ExclusionFilter) SetFileName(expr string) error {
	if expr == "" {
		f.fileName = nil
		return nil
	}
	re, err := pattern.Compile(expr)
	if err != nil {
		return err
	}
	f.fileName = re
	return nil
}

// Exclude reports whether ev's file must not be processed.
func (f *ExclusionFilter) Exclude(ev Event) bool {
	return pattern.Find(f.fileName, ev.FileName)
}

// Accept is the negation of Exclude.
func (f *ExclusionFilter) Accept(ev Event) bool {
	return !f.Exclude(ev)
}

func (f *ExclusionFilter) SetProperty(key, value string) error {
	if key != "fileName" {
		return errors.Newf(errors.ErrModuleProperty,
			"property '%s' does not exist in BeforeExecutionExclusionFileFilter", key).
			WithDetail("property", key)
	}
	return f.SetFileName(value)
}

func (f *ExclusionFilter) Property(key string) (string, bool) {
	if key != "fileName" {
		return "", false
	}
	return pattern.String(f.fileName), true
}

// Set is an ordered list of filters; a file is excluded when any member
// excludes it.
type Set []*ExclusionFilter

func (s Set) Exclude(ev Event) bool {
	for _, f := range s {
		if f != nil && f.Exclude(ev) {
			return true
		}
	}
	return false
}

// Partition splits paths into the ones to process and the ones excluded,
// keeping input order in both.
func (s Set) Partition(paths []string) (kept, excluded []string) {
	for _, p := range paths {
		if s.Exclude(Event{FileName: p}) {
			excluded = append(excluded, p)
			continue
		}
		kept = append(kept, p)
	}
	return kept, excluded
}
