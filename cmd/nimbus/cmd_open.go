package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nimbushost/nimbus-cli/internal/cli"
)

var openCmd = &cobra.Command{
	Use:   "open <console|docs|url>",
	Short: "Open a platform page in the default browser",
	Long: `Open a platform page in the default browser.

Targets:
  console  - the Nimbus web console
  docs     - platform documentation
  <url>    - any http(s) URL`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewAppContext()
	if err != nil {
		return fmt.Errorf("failed to initialize application context: %w", err)
	}

	return cli.OpenTarget(ctx, args[0])
}
