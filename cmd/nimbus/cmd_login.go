package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nimbushost/nimbus-cli/internal/cli"
)

var (
	loginEndpoint       string
	loginToken          string
	loginNonInteractive bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store platform credentials",
	Long: `Verify and store the API endpoint and token used by other commands.

Without flags the endpoint and token are prompted for. The token is kept
in the CLI config file with owner-only permissions.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginEndpoint, "endpoint", "", "Platform API endpoint")
	loginCmd.Flags().StringVar(&loginToken, "token", "", "Platform API token")
	loginCmd.Flags().BoolVar(&loginNonInteractive, "non-interactive", false, "Run in non-interactive mode")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewAppContextWithOptions(loginNonInteractive)
	if err != nil {
		return fmt.Errorf("failed to initialize application context: %w", err)
	}

	return cli.Login(ctx, loginEndpoint, loginToken)
}
