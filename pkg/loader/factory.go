package loader

import (
	"github.com/arthur-debert/ruleset/pkg/registry"
)

// Factory builds one module value.
type Factory func() (any, error)

// FactoryLoader constructs modules from registered factory functions. It
// suits modules that cannot be expressed as a zero struct.
type FactoryLoader struct {
	factories registry.Registry[Factory]
}

func NewFactoryLoader() *FactoryLoader {
	return &FactoryLoader{factories: registry.New[Factory]()}
}

// Register binds id to f. It fails with ErrFrozen after Freeze.
func (l *FactoryLoader) Register(id string, f Factory) error {
	return l.factories.Register(id, f)
}

// Freeze stops further registration.
func (l *FactoryLoader) Freeze() {
	l.factories.Freeze()
}

// IDs returns the registered identifiers, sorted.
func (l *FactoryLoader) IDs() []string {
	return l.factories.List()
}

func (l *FactoryLoader) Construct(id string) (v any, ok bool) {
	f, found := l.factories.Lookup(id)
	if !found || f == nil {
		return nil, false
	}

	defer func() {
		if r := recover(); r != nil {
			logMiss(id, panicError{value: r})
			v, ok = nil, false
		}
	}()

	v, err := f()
	if err == nil && v == nil {
		return nil, false
	}
	if err == nil {
		err = initialize(v)
	}
	if err != nil {
		logMiss(id, err)
		return nil, false
	}
	return v, true
}
