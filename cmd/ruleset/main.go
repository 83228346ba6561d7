package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/ruleset/internal/cli"
	"github.com/arthur-debert/ruleset/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		styler := style.NewStyler(style.DetectFormat(os.Stderr) == style.FormatTerminal)
		fmt.Fprintln(os.Stderr, styler.Render(style.ErrorStyle, "Error:"), err)
		os.Exit(1)
	}
}
