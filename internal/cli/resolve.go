package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/ruleset/pkg/checks"
	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/arthur-debert/ruleset/pkg/metrics"
	"github.com/arthur-debert/ruleset/pkg/namespaces"
	"github.com/arthur-debert/ruleset/pkg/resolver"
	"github.com/arthur-debert/ruleset/pkg/style"
	"github.com/spf13/cobra"
)

type resolveOptions struct {
	packages   []string
	metrics    bool
	properties bool
}

func newResolveCmd(global *globalOptions) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:     "resolve NAME...",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			packages := append(append([]string(nil), cfg.Packages...), opts.packages...)
			return runResolve(cmd, namespaces.FromPackages(packages...).Prefixes(), args, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.packages, "package", "p", nil, MsgFlagPackage)
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, MsgFlagMetrics)
	cmd.Flags().BoolVar(&opts.properties, "properties", false, MsgFlagProperty)
	return cmd
}

func runResolve(cmd *cobra.Command, prefixes []string, names []string, opts *resolveOptions) error {
	ctor, err := checks.NewLoader()
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	factory, err := resolver.New(prefixes, ctor, resolver.WithObserver(collector))
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	styler := stylerFor(cmd)

	failed := 0
	for _, name := range names {
		r, err := factory.Explain(name)
		if err != nil {
			failure, ok := resolver.AsFailure(err)
			if !ok {
				return err
			}
			failed++
			fmt.Fprintf(errOut, MsgUnresolvedFormat, styler.Render(style.ErrorStyle, name), failure.Error())
			continue
		}
		printResolution(out, styler, r)
		if opts.properties {
			printProperties(out, checks.PropertiesOf(r.Instance))
		}
	}

	if opts.metrics {
		if err := printMetrics(out, styler, collector); err != nil {
			return err
		}
	}

	if failed > 0 {
		return errors.Newf(errors.ErrModuleNotFound, MsgErrUnresolved, failed, len(names)).
			WithDetail("failed", failed)
	}
	return nil
}

func printResolution(w io.Writer, styler style.Styler, r *resolver.Resolution) {
	noun := "attempt"
	if r.Attempts != 1 {
		noun = "attempts"
	}
	strategy := r.Strategy.String()
	fmt.Fprintf(w, MsgResolvedFormat,
		styler.Render(style.TitleStyle, r.Name),
		styler.Render(style.IDStyle, r.ID),
		styler.Render(style.Strategy(strategy), strategy),
		r.Attempts, noun)
}

func printProperties(w io.Writer, props map[string]string) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, MsgPropertyFormat, k, props[k])
	}
}

func printMetrics(w io.Writer, styler style.Styler, c *metrics.Collector) error {
	samples, err := c.Snapshot()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, styler.Render(style.TitleStyle, "Metrics"))
	for _, s := range samples {
		fmt.Fprintf(w, MsgMetricFormat, s.Name, formatLabels(s.Labels), s.Value)
	}
	return nil
}

func formatLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%q", k, labels[k])
	}
	return "{" + strings.Join(parts, ",") + "}"
}
