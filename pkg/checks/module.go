// Package checks is the catalogue of modules shipped with ruleset.
//
// Every module is a struct with a zero-value constructor. Modules that take
// properties embed Base and fill their defaults in Init; the loader calls
// Init right after construction.
package checks

import (
	"sort"
	"strconv"

	"github.com/arthur-debert/ruleset/pkg/audit"
	"github.com/arthur-debert/ruleset/pkg/errors"
)

// Properties every module accepts.
const (
	PropertySeverity = "severity"
	PropertyID       = "id"
)

// Configurable is a module that accepts string properties.
type Configurable interface {
	SetProperty(key, value string) error
	Property(key string) (string, bool)
}

// Finisher is a module with work to do once all properties are set.
type Finisher interface {
	FinishSetup() error
}

// Base stores a module's properties. Only keys declared through defaults,
// plus severity and id, can be set.
type Base struct {
	props map[string]string
}

func (b *Base) defaults(kv ...string) error {
	if len(kv)%2 != 0 {
		return errors.Newf(errors.ErrInternal, "property defaults must come in pairs, got %d values", len(kv))
	}
	if b.props == nil {
		b.props = map[string]string{PropertySeverity: audit.SeverityError.String()}
	}
	for i := 0; i < len(kv); i += 2 {
		b.props[kv[i]] = kv[i+1]
	}
	return nil
}

func (b *Base) SetProperty(key, value string) error {
	switch key {
	case PropertySeverity:
		if _, err := audit.ParseSeverity(value); err != nil {
			return errors.Wrapf(err, errors.ErrModuleProperty, "invalid severity '%s'", value).
				WithDetail("property", key)
		}
	case PropertyID:
	default:
		if _, ok := b.props[key]; !ok {
			return errors.Newf(errors.ErrModuleProperty, "property '%s' does not exist, please check the documentation", key).
				WithDetail("property", key)
		}
	}
	if b.props == nil {
		b.props = map[string]string{}
	}
	b.props[key] = value
	return nil
}

func (b *Base) Property(key string) (string, bool) {
	v, ok := b.props[key]
	return v, ok
}

// Properties returns a copy of every property and its current value.
func (b *Base) Properties() map[string]string {
	out := make(map[string]string, len(b.props))
	for k, v := range b.props {
		out[k] = v
	}
	return out
}

// Severity defaults to error when unset.
func (b *Base) Severity() audit.Severity {
	s, err := audit.ParseSeverity(b.props[PropertySeverity])
	if err != nil {
		return audit.SeverityError
	}
	return s
}

// ID is the user-assigned module id, used to target suppressions.
func (b *Base) ID() string {
	return b.props[PropertyID]
}

// Int parses an integer property.
func (b *Base) Int(key string) (int, error) {
	v, ok := b.props[key]
	if !ok {
		return 0, errors.Newf(errors.ErrModuleProperty, "property '%s' is not set", key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrModuleProperty, "property '%s' must be an integer, got '%s'", key, v).
			WithDetail("property", key)
	}
	return n, nil
}

// Bool parses a boolean property.
func (b *Base) Bool(key string) (bool, error) {
	v, ok := b.props[key]
	if !ok {
		return false, errors.Newf(errors.ErrModuleProperty, "property '%s' is not set", key)
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrModuleProperty, "property '%s' must be a boolean, got '%s'", key, v).
			WithDetail("property", key)
	}
	return parsed, nil
}

// Configure applies props to module in key order and then runs
// FinishSetup when the module has one.
func Configure(module any, props map[string]string) error {
	if len(props) > 0 {
		c, ok := module.(Configurable)
		if !ok {
			return errors.Newf(errors.ErrModuleContract, "module %T does not accept properties", module)
		}
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := c.SetProperty(k, props[k]); err != nil {
				return err
			}
		}
	}
	if f, ok := module.(Finisher); ok {
		return f.FinishSetup()
	}
	return nil
}

// PropertiesOf returns the properties of module, or nil when it does not
// expose them.
func PropertiesOf(module any) map[string]string {
	if p, ok := module.(interface{ Properties() map[string]string }); ok {
		return p.Properties()
	}
	return nil
}
