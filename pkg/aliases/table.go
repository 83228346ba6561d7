// Package aliases holds the table that maps short module names, as users
// write them in configuration, to canonical module identifiers.
//
// A Table is immutable once built. The built-in table is constructed once per
// process and passed explicitly to every resolver that needs it.
package aliases

import (
	"sort"
	"sync"

	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/arthur-debert/ruleset/pkg/registry"
)

// Entry binds a short identifier to a canonical identifier.
type Entry struct {
	Short     string `yaml:"short"`
	Canonical string `yaml:"canonical"`
}

// Table is a read-only short -> canonical mapping. The zero value is not
// usable; build tables with New or Builtin.
type Table struct {
	entries registry.Registry[string]
}

// New builds a table from entries. A short identifier bound twice to the same
// canonical identifier is collapsed; bound to two different ones it is an
// error.
func New(entries ...Entry) (*Table, error) {
	reg := registry.New[string]()
	for _, e := range entries {
		if e.Short == "" || e.Canonical == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "alias entry %q -> %q is incomplete", e.Short, e.Canonical)
		}
		if existing, ok := reg.Lookup(e.Short); ok {
			if existing == e.Canonical {
				continue
			}
			return nil, errors.Newf(errors.ErrInvalidInput,
				"alias %q maps to both %q and %q", e.Short, existing, e.Canonical).
				WithDetail("short", e.Short)
		}
		if err := reg.Register(e.Short, e.Canonical); err != nil {
			return nil, err
		}
	}
	reg.Freeze()
	return &Table{entries: reg}, nil
}

// MustNew is New for package-level data that is known to be valid.
func MustNew(entries ...Entry) *Table {
	t, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the canonical identifier for short.
func (t *Table) Lookup(short string) (string, bool) {
	return t.entries.Lookup(short)
}

// Len returns the number of short identifiers.
func (t *Table) Len() int {
	return t.entries.Count()
}

// Entries returns a snapshot sorted by short identifier.
func (t *Table) Entries() []Entry {
	names := t.entries.List()
	out := make([]Entry, 0, len(names))
	for _, short := range names {
		canonical, _ := t.entries.Lookup(short)
		out = append(out, Entry{Short: short, Canonical: canonical})
	}
	return out
}

// Canonicals returns the distinct canonical identifiers, sorted.
func (t *Table) Canonicals() []string {
	seen := map[string]struct{}{}
	for _, e := range t.Entries() {
		seen[e.Canonical] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

var builtinOnce = sync.OnceValue(func() *Table {
	return MustNew(builtinEntries()...)
})

// Builtin returns the process-wide table of shipped modules.
func Builtin() *Table {
	return builtinOnce()
}
