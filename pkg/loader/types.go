package loader

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/viant/xreflect"
)

// TypeLoader constructs registered struct types by reflection. The value
// built is a pointer to a zero struct, so unexported types construct as
// readily as exported ones.
type TypeLoader struct {
	mu    sync.RWMutex
	types *xreflect.Types
	ids   map[string]struct{}
}

// NewTypeLoader returns an empty loader.
func NewTypeLoader() *TypeLoader {
	return &TypeLoader{
		types: xreflect.NewTypes(),
		ids:   map[string]struct{}{},
	}
}

// Register binds id to t. Pointer types are registered by their element;
// only struct types are accepted.
func (l *TypeLoader) Register(id string, t reflect.Type) error {
	if t == nil {
		return errors.Newf(errors.ErrInvalidInput, "type for %q is nil", id)
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return errors.Newf(errors.ErrInvalidInput, "type for %q is %s, want struct", id, t.Kind())
	}
	pkg, name := SplitID(id)
	if name == "" {
		return errors.Newf(errors.ErrInvalidInput, "identifier %q has no type name", id)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, dup := l.ids[id]; dup {
		return errors.Newf(errors.ErrAlreadyExists, "type %q is already registered", id)
	}
	if err := l.types.Register(name, xreflect.WithPackage(pkg), xreflect.WithReflectType(t)); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "registering %q", id)
	}
	l.ids[id] = struct{}{}
	return nil
}

// IDs returns the registered identifiers, in no particular order.
func (l *TypeLoader) IDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.ids))
	for id := range l.ids {
		out = append(out, id)
	}
	return out
}

// Construct looks id up and returns a pointer to a new zero value, after
// running Init when the type provides it.
func (l *TypeLoader) Construct(id string) (v any, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logMiss(id, panicError{value: r})
			v, ok = nil, false
		}
	}()

	t, err := l.lookup(id)
	if err != nil {
		logMiss(id, err)
		return nil, false
	}

	v = reflect.New(t).Interface()
	if err := initialize(v); err != nil {
		logMiss(id, err)
		return nil, false
	}
	return v, true
}

func (l *TypeLoader) lookup(id string) (reflect.Type, error) {
	pkg, name := SplitID(id)
	if pkg == "" {
		return nil, errors.Newf(errors.ErrNotFound, "%q is not fully qualified", id)
	}

	l.mu.RLock()
	_, known := l.ids[id]
	var (
		t   reflect.Type
		err error
	)
	if known {
		t, err = l.types.Lookup(name, xreflect.WithPackage(pkg))
	}
	l.mu.RUnlock()
	if !known {
		return nil, errors.Newf(errors.ErrNotFound, "type %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.Newf(errors.ErrNotFound, "type %q not found", id)
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.Newf(errors.ErrNotFound, "%q resolves to %s, not a module", id, t.Kind())
	}
	return t, nil
}

type panicError struct {
	value any
}

func (p panicError) Error() string {
	return fmt.Sprintf("panic during construction: %v", p.value)
}
