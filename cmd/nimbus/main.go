package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nimbushost/nimbus-cli/internal/cli"
	"github.com/nimbushost/nimbus-cli/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "nimbus",
	Short: "Nimbus hosting platform helper",
	Long: `A command-line helper for the Nimbus cloud hosting platform.

This tool provides an interactive menu and command-line interface for:
- Running local shell commands with TTY passthrough and progress feedback
- Downloading remote server aliases into your ssh configuration
- Opening the web console, documentation, or any platform URL
- Storing platform credentials

Run without arguments to launch the interactive menu.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runInteractiveMenu,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch interactive menu",
	Long:  `Launch the interactive menu interface.`,
	RunE:  runInteractiveMenu,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(menuCmd)
}

func runInteractiveMenu(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewAppContext()
	if err != nil {
		return fmt.Errorf("failed to initialize application context: %w", err)
	}

	menu := cli.NewMenu(ctx)
	return menu.Show()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
