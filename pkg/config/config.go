package config

import (
	"sort"

	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// ModuleConfig names a module and the properties applied to it after
// construction.
type ModuleConfig struct {
	Name       string            `koanf:"name" toml:"name" yaml:"name" validate:"required"`
	Properties map[string]string `koanf:"properties" toml:"properties,omitempty" yaml:"properties,omitempty"`
}

// Config is the merged configuration.
type Config struct {
	// Packages become namespace prefixes, in order.
	Packages []string `koanf:"packages" toml:"packages" yaml:"packages" validate:"dive,required"`
	Modules  []ModuleConfig `koanf:"modules" toml:"modules" yaml:"modules" validate:"dive"`
	// Exclude holds file path patterns, each turned into an exclusion filter.
	Exclude []string `koanf:"exclude" toml:"exclude" yaml:"exclude"`
	// Suppressions is a suppressions file path.
	Suppressions string `koanf:"suppressions" toml:"suppressions,omitempty" yaml:"suppressions,omitempty"`
	Concurrency  int    `koanf:"concurrency" toml:"concurrency" yaml:"concurrency" validate:"min=1,max=64"`
}

// ModuleNames returns the configured module names in order.
func (c *Config) ModuleNames() []string {
	names := make([]string, len(c.Modules))
	for i, m := range c.Modules {
		names[i] = m.Name
	}
	return names
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints. Every violation is listed in the error
// details under "fields".
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace()+" ("+fe.Tag()+")")
	}
	sort.Strings(fields)
	return errors.Wrapf(err, errors.ErrConfigValid, "invalid configuration: %d field(s) failed validation", len(fields)).
		WithDetail("fields", fields)
}
