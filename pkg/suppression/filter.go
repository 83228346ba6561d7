package suppression

import (
	"os"
	"strconv"

	"github.com/arthur-debert/ruleset/pkg/audit"
	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/arthur-debert/ruleset/pkg/logging"
)

// Filter drops the events matched by any element of a suppressions file.
// Configure it with the "file" and "optional" properties, then call
// FinishSetup.
type Filter struct {
	file     string
	optional bool
	elements []*Element
}

// NewFilter loads path immediately.
func NewFilter(path string, optional bool) (*Filter, error) {
	f := &Filter{file: path, optional: optional}
	if err := f.FinishSetup(); err != nil {
		return nil, err
	}
	return f, nil
}

// FromElements builds a filter around already parsed elements.
func FromElements(file string, elements ...*Element) *Filter {
	return &Filter{file: file, elements: elements}
}

func (f *Filter) SetProperty(key, value string) error {
	switch key {
	case "file":
		f.file = value
	case "optional":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, errors.ErrModuleProperty, "property 'optional' must be a boolean, got '%s'", value).
				WithDetail("property", key)
		}
		f.optional = b
	default:
		return errors.Newf(errors.ErrModuleProperty, "property '%s' does not exist in SuppressionFilter", key).
			WithDetail("property", key)
	}
	return nil
}

func (f *Filter) Property(key string) (string, bool) {
	switch key {
	case "file":
		return f.file, true
	case "optional":
		return strconv.FormatBool(f.optional), true
	}
	return "", false
}

// FinishSetup loads the configured file. A missing optional file leaves the
// filter empty.
func (f *Filter) FinishSetup() error {
	f.elements = nil
	if f.file == "" {
		return nil
	}
	if f.optional {
		if _, err := os.Stat(f.file); os.IsNotExist(err) {
			logger := logging.GetLogger("suppression")
			logger.Debug().Str("file", f.file).Msg("Optional suppressions file is missing")
			return nil
		}
	}
	elements, err := Load(f.file)
	if err != nil {
		return err
	}
	f.elements = elements
	return nil
}

// File returns the configured suppressions file.
func (f *Filter) File() string {
	return f.file
}

// Elements returns the loaded elements in file order.
func (f *Filter) Elements() []*Element {
	return append([]*Element(nil), f.elements...)
}

// Accept reports whether ev survives the filter. Elements are consulted in
// file order and the first one that suppresses ev ends the search, so later
// elements that would also match stay unused.
func (f *Filter) Accept(ev audit.Event) bool {
	for _, e := range f.elements {
		if !e.Accept(ev) {
			return false
		}
	}
	return true
}
