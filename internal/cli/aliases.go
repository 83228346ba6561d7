package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/ruleset/pkg/aliases"
	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/arthur-debert/ruleset/pkg/style"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newAliasesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "aliases [FILTER]",
		Short: MsgAliasesShort,
		Long: `Aliases lists every short name that maps to a canonical module identifier.
An optional FILTER keeps the entries whose alias or identifier contains it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := style.ParseFormat(format)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
			}
			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			out := cmd.OutOrStdout()
			return writeAliases(out, style.Resolve(f, out), filterEntries(aliases.Builtin().Entries(), filter))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	return cmd
}

func filterEntries(entries []aliases.Entry, filter string) []aliases.Entry {
	if filter == "" {
		return entries
	}
	var kept []aliases.Entry
	for _, e := range entries {
		if strings.Contains(e.Short, filter) || strings.Contains(e.Canonical, filter) {
			kept = append(kept, e)
		}
	}
	return kept
}

func writeAliases(w io.Writer, f style.Format, entries []aliases.Entry) error {
	switch f {
	case style.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode aliases")
		}
		return enc.Close()
	case style.FormatMarkdown:
		_, err := io.WriteString(w, aliasTable(entries))
		return err
	case style.FormatTerminal:
		_, err := io.WriteString(w, style.RenderMarkdown(aliasTable(entries)))
		return err
	default:
		width := 0
		for _, e := range entries {
			width = max(width, len(e.Short))
		}
		for _, e := range entries {
			fmt.Fprintf(w, "%-*s  %s\n", width, e.Short, e.Canonical)
		}
		return nil
	}
}

func aliasTable(entries []aliases.Entry) string {
	var b strings.Builder
	b.WriteString("| Alias | Module |\n|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | `%s` |\n", e.Short, e.Canonical)
	}
	return b.String()
}
