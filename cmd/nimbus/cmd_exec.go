package main

import (
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/nimbushost/nimbus-cli/internal/cli"
	"github.com/nimbushost/nimbus-cli/internal/local"
)

var (
	execTTY            bool
	execNoTTY          bool
	execProgress       bool
	execNonInteractive bool
)

var execCmd = &cobra.Command{
	Use:   "exec [flags] -- <command>...",
	Short: "Run a local shell command",
	Long: `Run a command on the local machine through the platform shell.

The command's exit code becomes the exit code of nimbus itself, so exec
can be used transparently in scripts. With a terminal attached, the
subprocess gets TTY passthrough; --progress shows a liveness indicator
instead of streaming output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	execCmd.Flags().BoolVar(&execTTY, "tty", false, "Force TTY passthrough")
	execCmd.Flags().BoolVar(&execNoTTY, "no-tty", false, "Disable TTY passthrough")
	execCmd.Flags().BoolVar(&execProgress, "progress", false, "Show a progress indicator while the command runs")
	execCmd.Flags().BoolVar(&execNonInteractive, "non-interactive", false, "Run in non-interactive mode")

	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	if execTTY && execNoTTY {
		return fmt.Errorf("--tty and --no-tty are mutually exclusive")
	}

	ctx, err := cli.NewAppContextWithOptions(execNonInteractive)
	if err != nil {
		return fmt.Errorf("failed to initialize application context: %w", err)
	}

	mode := local.TTYAuto
	switch {
	case execTTY:
		mode = local.TTYForceOn
	case execNoTTY:
		mode = local.TTYForceOff
	}

	var callback local.OutputFunc
	if !execProgress {
		callback = func(chunk string) { fmt.Print(chunk) }
	}

	commandLine := shellquote.Join(args...)
	result, err := ctx.Runner.RunInteractive(commandLine, mode, execProgress, callback)
	if err != nil {
		return err
	}

	if result.ExitCode != 0 {
		os.Exit(result.ExitCode)
	}
	return nil
}
