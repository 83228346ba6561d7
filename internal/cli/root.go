// Package cli builds the ruleset command tree.
package cli

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/ruleset/internal/version"
	"github.com/arthur-debert/ruleset/pkg/cobrax/topics"
	"github.com/arthur-debert/ruleset/pkg/config"
	"github.com/arthur-debert/ruleset/pkg/logging"
	"github.com/arthur-debert/ruleset/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed help
var helpFS embed.FS

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbosity  int
	configFile string
	noEnv      bool
}

func (o *globalOptions) loadConfig() (*config.Config, error) {
	return config.Load(config.Options{File: o.configFile, NoEnv: o.noEnv})
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "ruleset",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&opts.noEnv, "no-env", false, MsgFlagNoEnv)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newResolveCmd(opts))
	rootCmd.AddCommand(newAliasesCmd())
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd())

	installTopics(rootCmd)

	return rootCmd
}

// installTopics adds the embedded help topics. Markdown is rendered only
// when stdout is a terminal.
func installTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(helpFS, "help")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	var renderer topics.Renderer = topics.PlainRenderer{}
	if stdoutIsTerminal() {
		renderer = topics.MarkdownOnly(style.RenderMarkdown)
	}
	m, err := topics.Load(sub, topics.Options{Renderer: renderer})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	m.Install(rootCmd)
}

// stylerFor styles output only when cmd writes to a color terminal.
func stylerFor(cmd *cobra.Command) style.Styler {
	return style.NewStyler(style.DetectFormat(cmd.OutOrStdout()) == style.FormatTerminal)
}
