// Package loader turns fully-qualified module identifiers into live values.
//
// A Constructor answers one question: can this identifier be materialised
// right now? Every failure is an ordinary negative answer. The resolver
// probes many identifiers that are expected not to exist, so nothing here
// returns an error for a miss.
package loader

import (
	"strings"

	"github.com/arthur-debert/ruleset/pkg/logging"
)

// Constructor builds a fresh value for a fully-qualified identifier.
// Implementations must be safe for concurrent use.
type Constructor interface {
	Construct(id string) (any, bool)
}

// ConstructorFunc adapts a function to Constructor.
type ConstructorFunc func(id string) (any, bool)

func (f ConstructorFunc) Construct(id string) (any, bool) {
	return f(id)
}

// Initializer is implemented by modules that need setup after zero-value
// construction, such as filling property defaults. A non-nil error makes the
// construction attempt fail.
type Initializer interface {
	Init() error
}

// Chain tries each constructor in order and returns the first success.
type Chain []Constructor

func (c Chain) Construct(id string) (any, bool) {
	for _, ctor := range c {
		if ctor == nil {
			continue
		}
		if v, ok := ctor.Construct(id); ok {
			return v, true
		}
	}
	return nil, false
}

// SplitID splits "a.b.Name" into ("a.b", "Name"). An identifier without a
// separator has an empty package.
func SplitID(id string) (pkg, name string) {
	i := strings.LastIndex(id, ".")
	if i < 0 {
		return "", id
	}
	return id[:i], id[i+1:]
}

// initialize runs Init when v implements Initializer, converting panics into
// errors.
func initialize(v any) (err error) {
	in, ok := v.(Initializer)
	if !ok {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = panicError{value: r}
		}
	}()
	return in.Init()
}

func logMiss(id string, err error) {
	logger := logging.GetLogger("loader")
	logger.Debug().
		Str("id", id).
		Err(err).
		Msg("Keep looking, ignoring construction failure")
}
