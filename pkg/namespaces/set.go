// Package namespaces provides the ordered prefix set searched when a module
// name is neither canonical nor aliased.
package namespaces

import "strings"

// Set is an ordered, duplicate-free list of namespace prefixes. It is
// immutable after New and safe for concurrent reads.
type Set struct {
	prefixes []string
}

// New keeps the first occurrence of every prefix, in input order. Empty
// prefixes are dropped.
func New(prefixes ...string) *Set {
	seen := make(map[string]struct{}, len(prefixes))
	kept := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		kept = append(kept, p)
	}
	return &Set{prefixes: kept}
}

// FromPackages turns package names into prefixes by appending the separator
// when it is missing, so "ruleset.checks" and "ruleset.checks." are the same
// entry.
func FromPackages(packages ...string) *Set {
	prefixes := make([]string, 0, len(packages))
	for _, p := range packages {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasSuffix(p, ".") {
			p += "."
		}
		prefixes = append(prefixes, p)
	}
	return New(prefixes...)
}

// Prefixes returns a copy of the prefixes in order.
func (s *Set) Prefixes() []string {
	out := make([]string, len(s.prefixes))
	copy(out, s.prefixes)
	return out
}

func (s *Set) Len() int {
	return len(s.prefixes)
}

// Candidates prepends every prefix to name, in set order.
func (s *Set) Candidates(name string) []string {
	out := make([]string, len(s.prefixes))
	for i, p := range s.prefixes {
		out[i] = p + name
	}
	return out
}
