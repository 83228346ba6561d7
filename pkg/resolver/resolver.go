package resolver

import (
	"reflect"
	"strings"

	"github.com/arthur-debert/ruleset/pkg/aliases"
	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/arthur-debert/ruleset/pkg/loader"
	"github.com/arthur-debert/ruleset/pkg/logging"
	"github.com/arthur-debert/ruleset/pkg/namespaces"
)

// Resolution is a successful lookup.
type Resolution struct {
	Name     string
	ID       string
	Strategy Strategy
	// Attempts counts every construction tried, the successful one included.
	Attempts int
	Instance any
}

// Factory resolves module names. Build it with New.
type Factory struct {
	prefixes    *namespaces.Set
	ctor        loader.Constructor
	aliases     *aliases.Table
	suffix      string
	observer    Observer
	concurrency int
}

// New builds a Factory searching prefixes, in order, after the alias table.
// A nil constructor is a programming error and fails with ErrLoaderMissing,
// including a nil pointer or func stored in the interface.
func New(prefixes []string, ctor loader.Constructor, opts ...Option) (*Factory, error) {
	if isNil(ctor) {
		return nil, errors.New(errors.ErrLoaderMissing, "resolver requires a module constructor")
	}

	f := &Factory{
		prefixes:    namespaces.New(prefixes...),
		ctor:        ctor,
		aliases:     aliases.Builtin(),
		suffix:      aliases.CheckSuffix,
		observer:    nopObserver{},
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func isNil(ctor loader.Constructor) bool {
	if ctor == nil {
		return true
	}
	v := reflect.ValueOf(ctor)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// MustNew is New that panics on error.
func MustNew(prefixes []string, ctor loader.Constructor, opts ...Option) *Factory {
	f, err := New(prefixes, ctor, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Prefixes returns the namespace prefixes in search order.
func (f *Factory) Prefixes() []string {
	return f.prefixes.Prefixes()
}

func (f *Factory) Aliases() *aliases.Table {
	return f.aliases
}

func (f *Factory) Suffix() string {
	return f.suffix
}

// Resolve constructs the module named name.
func (f *Factory) Resolve(name string) (any, error) {
	r, err := f.Explain(name)
	if err != nil {
		return nil, err
	}
	return r.Instance, nil
}

// Explain is Resolve that also reports how the name was resolved.
func (f *Factory) Explain(name string) (*Resolution, error) {
	logger := logging.GetLogger("resolver")

	if name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "module name cannot be empty")
	}

	run := &attempt{factory: f}
	suffixed := name + f.suffix

	steps := []struct {
		strategy Strategy
		try      func(Strategy, string) (any, string, bool)
		name     string
	}{
		{StrategyDirect, run.direct, name},
		{StrategySuffixed, run.direct, suffixed},
		{StrategyPrefixed, run.prefixed, name},
		{StrategySuffixedPrefixed, run.prefixed, suffixed},
	}

	for _, step := range steps {
		v, id, ok := step.try(step.strategy, step.name)
		if !ok {
			continue
		}
		r := Resolution{
			Name:     name,
			ID:       id,
			Strategy: step.strategy,
			Attempts: len(run.failed) + 1,
			Instance: v,
		}
		f.observer.Resolved(r)
		logger.Debug().
			Str("name", name).
			Str("id", id).
			Stringer("strategy", step.strategy).
			Int("attempts", r.Attempts).
			Msg("Resolved module")
		return &r, nil
	}

	failure := &Failure{Requested: name, Suffixed: suffixed, Attempted: run.failed}
	f.observer.Failed(failure)
	logger.Debug().
		Str("name", name).
		Strs("attempted", failure.IDs()).
		Msg("Module not found")

	return nil, errors.Wrapf(failure, errors.ErrModuleNotFound, "module '%s' not found", name).
		WithDetail("requested", name).
		WithDetail("attempted", failure.IDs())
}

// attempt holds the record of one Explain call.
type attempt struct {
	factory *Factory
	failed  []Attempt
}

func (a *attempt) direct(s Strategy, name string) (any, string, bool) {
	id, ok := a.factory.aliases.Lookup(name)
	if !ok {
		if !strings.Contains(name, ".") {
			return nil, "", false
		}
		id = name
	}
	v, ok := a.construct(s, id)
	return v, id, ok
}

func (a *attempt) prefixed(s Strategy, name string) (any, string, bool) {
	for _, id := range a.factory.prefixes.Candidates(name) {
		if v, ok := a.construct(s, id); ok {
			return v, id, true
		}
	}
	return nil, "", false
}

func (a *attempt) construct(s Strategy, id string) (any, bool) {
	v, ok := a.factory.ctor.Construct(id)
	a.factory.observer.Attempted(s, id, ok)
	if !ok {
		a.failed = append(a.failed, Attempt{Strategy: s, ID: id})
	}
	return v, ok
}
