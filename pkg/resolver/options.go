package resolver

import (
	"github.com/arthur-debert/ruleset/pkg/aliases"
)

// DefaultConcurrency bounds ResolveAll when no limit is configured.
const DefaultConcurrency = 8

// Option configures a Factory.
type Option func(*Factory)

// WithAliases replaces the built-in alias table. A nil table means no
// aliases at all.
func WithAliases(t *aliases.Table) Option {
	return func(f *Factory) {
		if t == nil {
			t = aliases.MustNew()
		}
		f.aliases = t
	}
}

// WithSuffix changes the suffix appended by the suffixed strategies.
func WithSuffix(suffix string) Option {
	return func(f *Factory) {
		f.suffix = suffix
	}
}

// WithObserver registers an observer for resolution events.
func WithObserver(o Observer) Option {
	return func(f *Factory) {
		if o != nil {
			f.observer = o
		}
	}
}

// WithConcurrency caps the number of goroutines ResolveAll uses.
func WithConcurrency(n int) Option {
	return func(f *Factory) {
		if n < 1 {
			n = 1
		}
		f.concurrency = n
	}
}
