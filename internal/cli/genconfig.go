package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/ruleset/pkg/config"
	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long: `Genconfig prints a commented ruleset.toml with a few common modules, ready
to be edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Generate()
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if _, err := os.Stat(output); err == nil && !force {
				return errors.Newf(errors.ErrAlreadyExists, MsgErrConfigExist, output).WithDetail("file", output)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", output)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}
