package core

import (
	"context"
	"fmt"

	"github.com/arthur-debert/ruleset/pkg/audit"
	"github.com/arthur-debert/ruleset/pkg/checks"
	"github.com/arthur-debert/ruleset/pkg/config"
	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/arthur-debert/ruleset/pkg/filefilter"
	"github.com/arthur-debert/ruleset/pkg/loader"
	"github.com/arthur-debert/ruleset/pkg/logging"
	"github.com/arthur-debert/ruleset/pkg/namespaces"
	"github.com/arthur-debert/ruleset/pkg/resolver"
	"github.com/arthur-debert/ruleset/pkg/suppression"
)

// Module names used for the convenience fields of the configuration.
const (
	ExclusionModule   = "BeforeExecutionExclusionFileFilter"
	SuppressionModule = "SuppressionFilter"
)

// EventFilter is any module that can veto an audit event.
type EventFilter interface {
	Accept(ev audit.Event) bool
}

// SetupOptions holds the inputs of Setup.
type SetupOptions struct {
	Config *config.Config
	// Files are the input paths, checked against the file filters.
	Files []string
	// Loader is tried before Factories and the shipped module catalog.
	Loader loader.Constructor
	// Factories registers extra modules by canonical id.
	Factories map[string]loader.Factory
	Observer  resolver.Observer
}

// Module is a configured module instance.
type Module struct {
	Name     string
	Instance any
}

// SetupResult is the outcome of a successful Setup.
type SetupResult struct {
	Modules      []Module
	FileFilters  filefilter.Set
	Suppressions []*suppression.Filter
	EventFilters []EventFilter
	// Files kept by the file filters, in input order.
	Files    []string
	Excluded []string
}

// Setup resolves and configures every module named by opts.Config.
func Setup(ctx context.Context, opts SetupOptions) (*SetupResult, error) {
	logger := logging.GetLogger("core.setup")

	if opts.Config == nil {
		return nil, errors.New(errors.ErrInvalidInput, "setup requires a configuration")
	}
	cfg := opts.Config

	ctor, err := constructors(opts)
	if err != nil {
		return nil, err
	}

	resolverOpts := []resolver.Option{resolver.WithConcurrency(cfg.Concurrency)}
	if opts.Observer != nil {
		resolverOpts = append(resolverOpts, resolver.WithObserver(opts.Observer))
	}
	factory, err := resolver.New(namespaces.FromPackages(cfg.Packages...).Prefixes(), ctor, resolverOpts...)
	if err != nil {
		return nil, err
	}

	specs := moduleSpecs(cfg)
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}

	done := logging.LogOperationStart(logger, "resolve modules")
	instances, err := factory.ResolveAll(ctx, names)
	done()
	if err != nil {
		return nil, err
	}

	result := &SetupResult{}
	for i, spec := range specs {
		instance := instances[i]
		if err := checks.Configure(instance, spec.Properties); err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "configuring module '%s'", spec.Name).
				WithDetail("module", spec.Name)
		}
		result.add(spec.Name, instance)
	}

	result.Files, result.Excluded = result.FileFilters.Partition(opts.Files)

	logger.Info().
		Int("modules", len(result.Modules)).
		Int("files", len(result.Files)).
		Int("excluded", len(result.Excluded)).
		Msg("Setup complete")

	return result, nil
}

// constructors chains the caller's loader, the registered factories and the
// shipped catalog, in that order.
func constructors(opts SetupOptions) (loader.Chain, error) {
	var chain loader.Chain
	if opts.Loader != nil {
		chain = append(chain, opts.Loader)
	}
	if len(opts.Factories) > 0 {
		factories := loader.NewFactoryLoader()
		for id, f := range opts.Factories {
			if err := factories.Register(id, f); err != nil {
				return nil, err
			}
		}
		factories.Freeze()
		chain = append(chain, factories)
	}
	shipped, err := checks.NewLoader()
	if err != nil {
		return nil, err
	}
	return append(chain, shipped), nil
}

// moduleSpecs lists the configured modules followed by those implied by the
// exclude and suppressions fields.
func moduleSpecs(cfg *config.Config) []config.ModuleConfig {
	specs := append([]config.ModuleConfig(nil), cfg.Modules...)
	for _, pattern := range cfg.Exclude {
		specs = append(specs, config.ModuleConfig{
			Name:       ExclusionModule,
			Properties: map[string]string{"fileName": pattern},
		})
	}
	if cfg.Suppressions != "" {
		specs = append(specs, config.ModuleConfig{
			Name:       SuppressionModule,
			Properties: map[string]string{"file": cfg.Suppressions},
		})
	}
	return specs
}

func (r *SetupResult) add(name string, instance any) {
	r.Modules = append(r.Modules, Module{Name: name, Instance: instance})

	switch m := instance.(type) {
	case *filefilter.ExclusionFilter:
		r.FileFilters = append(r.FileFilters, m)
	case *suppression.Filter:
		r.Suppressions = append(r.Suppressions, m)
		r.EventFilters = append(r.EventFilters, m)
	case EventFilter:
		r.EventFilters = append(r.EventFilters, m)
	}
}

// Accept reports whether every event filter accepts ev.
func (r *SetupResult) Accept(ev audit.Event) bool {
	for _, f := range r.EventFilters {
		if !f.Accept(ev) {
			return false
		}
	}
	return true
}

// Finish reports the suppressions that never matched an event.
func (r *SetupResult) Finish() []audit.Message {
	return suppression.UnusedAudit(r.Suppressions...)
}

// String summarizes the result for logs.
func (r *SetupResult) String() string {
	return fmt.Sprintf("%d modules, %d files kept, %d excluded", len(r.Modules), len(r.Files), len(r.Excluded))
}
