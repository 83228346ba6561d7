package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/ruleset/pkg/core"
	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/arthur-debert/ruleset/pkg/metrics"
	"github.com/arthur-debert/ruleset/pkg/style"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	unused  bool
	metrics bool
}

func newCheckCmd(global *globalOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [FILES...]",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			files, err := expandPaths(args)
			if err != nil {
				return err
			}

			collector := metrics.NewCollector()
			res, err := core.Setup(cmd.Context(), core.SetupOptions{
				Config:   cfg,
				Files:    files,
				Observer: collector,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			styler := stylerFor(cmd)

			fmt.Fprintln(out, styler.Render(style.TitleStyle, "Modules"))
			for _, m := range res.Modules {
				fmt.Fprintf(out, MsgModuleFormat, m.Name, m.Instance)
			}
			fmt.Fprintf(out, MsgFilesFormat, len(res.Files), len(res.Excluded))
			for _, p := range res.Excluded {
				fmt.Fprintf(out, MsgExcludedItem, styler.Render(style.MutedStyle, p))
			}

			if opts.unused {
				for _, msg := range res.Finish() {
					fmt.Fprintln(out, styler.Render(style.WarningStyle, msg.String()))
				}
			}
			if opts.metrics {
				return printMetrics(out, styler, collector)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.unused, "unused", false, MsgFlagUnused)
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, MsgFlagMetrics)
	return cmd
}

// expandPaths walks directories and keeps plain files as given. Paths use
// forward slashes so exclusion patterns behave the same on every platform.
func expandPaths(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "cannot read %s", arg).WithDetail("path", arg)
		}
		if !info.IsDir() {
			files = append(files, filepath.ToSlash(arg))
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				files = append(files, filepath.ToSlash(path))
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to walk %s", arg)
		}
	}
	return files, nil
}
