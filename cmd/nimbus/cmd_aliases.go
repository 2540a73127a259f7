package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nimbushost/nimbus-cli/internal/cli"
)

var aliasesNonInteractive bool

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "Manage server aliases",
}

var aliasesUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Download server aliases from the platform",
	Long: `Download the server alias list from the platform API and write it
into the configured alias file as a managed ssh config block. Content
outside the managed block is preserved.`,
	Args: cobra.NoArgs,
	RunE: runAliasesUpdate,
}

func init() {
	aliasesUpdateCmd.Flags().BoolVar(&aliasesNonInteractive, "non-interactive", false, "Run in non-interactive mode")

	aliasesCmd.AddCommand(aliasesUpdateCmd)
	rootCmd.AddCommand(aliasesCmd)
}

func runAliasesUpdate(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewAppContextWithOptions(aliasesNonInteractive)
	if err != nil {
		return fmt.Errorf("failed to initialize application context: %w", err)
	}

	return cli.UpdateAliases(ctx)
}
